// Package knowledge holds the curated legal content used when the assistant
// is unavailable: keyword classifiers, guidance templates, and a small
// database of past cases.
//
// Three separate keyword tables live here. They look similar but serve
// different consumers and are tuned independently: topic detection picks one
// guidance template, category extraction labels a message with every area of
// law it touches, and specialization detection maps a message to an advocate
// practice area. Keep them separate.
package knowledge

import "strings"

// Topics select a single guidance template. Detection checks them in
// order and the first match wins.
const (
	TopicTheft    = "theft"
	TopicConsumer = "consumer"
	TopicFamily   = "family"
	TopicCriminal = "criminal"
	TopicGeneral  = "general"
)

var topicOrder = []string{TopicTheft, TopicConsumer, TopicFamily, TopicCriminal}

var topicKeywords = map[string][]string{
	TopicTheft:    {"stolen", "theft", "mobile", "phone", "laptop", "bike"},
	TopicConsumer: {"consumer", "defective", "product", "refund", "warranty", "online shopping"},
	TopicFamily:   {"divorce", "marriage", "husband", "wife", "custody", "maintenance"},
	TopicCriminal: {"fir", "police", "complaint", "crime"},
}

// DetectTopic classifies a message for template selection. Returns
// TopicGeneral when nothing matches.
func DetectTopic(message string) string {
	lower := strings.ToLower(message)
	for _, topic := range topicOrder {
		for _, kw := range topicKeywords[topic] {
			if strings.Contains(lower, kw) {
				return topic
			}
		}
	}
	return TopicGeneral
}

// GeneralCategory is the label applied when no specific area of law matches.
const GeneralCategory = "General Legal"

var categoryOrder = []string{
	"Criminal Law",
	"Family Law",
	"Consumer Protection",
	"Property Law",
	"Corporate Law",
	"Constitutional Law",
	"Labor Law",
	"Civil Law",
}

var categoryKeywords = map[string][]string{
	"Criminal Law":        {"fir", "police", "theft", "fraud", "crime", "arrest", "bail", "ipc", "murder", "assault", "cybercrime"},
	"Family Law":          {"divorce", "marriage", "custody", "maintenance", "domestic", "dowry", "alimony", "adoption"},
	"Consumer Protection": {"consumer", "defective", "product", "service", "refund", "warranty", "complaint", "bank"},
	"Property Law":        {"property", "land", "registration", "sale", "purchase", "mutation", "title", "rent"},
	"Corporate Law":       {"company", "business", "contract", "agreement", "partnership", "gst", "tax"},
	"Constitutional Law":  {"fundamental rights", "article", "constitution", "pil", "writ", "habeas corpus"},
	"Labor Law":           {"employment", "salary", "termination", "pf", "esi", "bonus", "overtime"},
	"Civil Law":           {"civil suit", "damages", "injunction", "specific performance", "tort"},
}

// ExtractCategories returns every area of law the message touches, in a
// stable order. A message that matches nothing gets GeneralCategory.
func ExtractCategories(message string) []string {
	lower := strings.ToLower(message)
	var categories []string
	for _, cat := range categoryOrder {
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(lower, kw) {
				categories = append(categories, cat)
				break
			}
		}
	}
	if len(categories) == 0 {
		return []string{GeneralCategory}
	}
	return categories
}

// GeneralSpecialization means no practice area matched and top-rated
// advocates of any specialization should be recommended.
const GeneralSpecialization = "general"

var specializationOrder = []string{"criminal", "family", "consumer", "property", "corporate"}

var specializationKeywords = map[string][]string{
	"criminal": {"fir", "police", "theft", "fraud", "crime", "arrest", "bail", "ipc", "murder", "assault"},
	"family":   {"divorce", "marriage", "custody", "maintenance", "domestic", "dowry", "alimony"},
	"consumer": {"consumer", "defective", "product", "service", "refund", "warranty", "complaint"},
	"property": {"property", "land", "registration", "sale", "purchase", "mutation", "title"},
	"corporate": {"company", "business", "contract", "agreement", "partnership", "gst", "tax"},
}

// DetectSpecialization maps a message to an advocate practice area. First
// matching table entry wins; GeneralSpecialization when nothing matches.
func DetectSpecialization(message string) string {
	lower := strings.ToLower(message)
	for _, spec := range specializationOrder {
		for _, kw := range specializationKeywords[spec] {
			if strings.Contains(lower, kw) {
				return spec
			}
		}
	}
	return GeneralSpecialization
}
