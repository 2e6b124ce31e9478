package knowledge

// Compose builds the full curated answer for a message: topic guidance plus
// any relevant past-case references. This is the path taken whenever the
// assistant is unavailable, and it must produce the same answer for the same
// message every time.
func Compose(message string) string {
	topic := DetectTopic(message)
	guidance := GuidanceFor(topic, message)
	return guidance + FormatCaseReferences(CasesForQuery(message))
}
