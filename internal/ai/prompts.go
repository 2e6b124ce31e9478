package ai

import (
	"fmt"
	"strings"
)

// ChatSystemInstruction frames the assistant for the public legal chat.
func ChatSystemInstruction(language string) string {
	return fmt.Sprintf(`You are LegalEase AI, a legal information assistant for India.
Answer questions about Indian law clearly and practically: name the applicable
acts and sections, describe the filing procedure, expected timelines and costs,
and cite landmark cases where relevant. Remind the user to consult a qualified
advocate for advice specific to their situation. Respond in the language with
ISO code %q.`, language)
}

// CaseStudyPrompt asks for a structured case analysis whose headings the
// section parser knows how to find.
func CaseStudyPrompt(caseTitle, caseText string) string {
	return fmt.Sprintf(`You are an expert law professor analyzing a case study for LLB students. Provide a comprehensive analysis of the following case:

CASE TITLE: %s

CASE STUDY:
%s

Please provide a detailed analysis including:

1. **Case Summary**: Brief overview of the case
2. **Key Facts**: Important factual elements
3. **Legal Issues**: Main legal questions raised
4. **Applicable Laws**: Relevant statutes, sections, and legal principles
5. **Court's Reasoning**: Analysis of judicial reasoning (if available)
6. **Judgment/Decision**: Outcome and its implications
7. **Legal Principles**: Key legal principles established or applied
8. **Precedent Value**: Importance as precedent for future cases
9. **Critical Analysis**: Strengths and weaknesses of the decision
10. **Student Learning Points**: Key takeaways for law students

Format your response in clear sections with proper headings. Make it educational and suitable for LLB students.`, caseTitle, caseText)
}

// TutorPrompt asks for a structured explanation of a topic.
func TutorPrompt(subject, topic, question string) string {
	if question == "" {
		question = "Explain this topic comprehensively"
	}
	return fmt.Sprintf(`You are an expert law tutor helping LLB students understand legal concepts.

SUBJECT: %s
TOPIC: %s
STUDENT QUESTION: %s

Please provide a comprehensive explanation that includes:

1. **Concept Overview**: Clear explanation of the main concept
2. **Key Definitions**: Important legal terms and definitions
3. **Legal Framework**: Relevant laws, sections, and regulations
4. **Practical Examples**: Real-world examples and case illustrations
5. **Important Cases**: Landmark cases related to this topic
6. **Exam Tips**: What students should focus on for exams
7. **Common Mistakes**: Typical errors students make
8. **Further Reading**: Suggested resources for deeper study

Use simple language while maintaining legal accuracy.`, subject, topic, question)
}

// QuizPrompt asks for multiple-choice questions in the exact line format
// ParseQuizQuestions expects.
func QuizPrompt(subject, topic string, numQuestions int, difficulty string) string {
	return fmt.Sprintf(`Create a quiz for LLB students on the following:

SUBJECT: %s
TOPIC: %s
NUMBER OF QUESTIONS: %d
DIFFICULTY: %s

Generate %d multiple-choice questions with the following format for each question:

Question X: [Question text]
A) [Option A]
B) [Option B]
C) [Option C]
D) [Option D]
Correct Answer: [Letter]
Explanation: [Brief explanation of why this is correct]

Make sure questions cover different aspects of the topic and are appropriate for the %s level.
Include questions about definitions, applications, case law, and practical scenarios.`,
		subject, topic, numQuestions, difficulty, numQuestions, difficulty)
}

// StudyPlanPrompt asks for a multi-week schedule across subjects.
func StudyPlanPrompt(semester string, subjects []string, examDate string, durationWeeks int, hoursPerDay float64, weakSubjects []string) string {
	weak := strings.Join(weakSubjects, ", ")
	prompt := fmt.Sprintf(`Create a comprehensive study plan for an LLB student with the following details:

SEMESTER: %s
SUBJECTS: %s
EXAM DATE: %s
DURATION: %d weeks
DAILY STUDY HOURS: %.1f
WEAK SUBJECTS: %s

Create a detailed study plan that includes:

1. **Weekly Schedule**: Day-wise breakdown of subjects to study
2. **Subject Allocation**: Time distribution among subjects
3. **Priority Areas**: Focus areas for weak subjects
4. **Revision Schedule**: When and how to revise each subject
5. **Practice Tests**: When to take mock tests and practice papers
6. **Study Techniques**: Recommended study methods for each subject
7. **Milestones**: Weekly goals and checkpoints

Make the plan realistic, achievable, and focused on exam success.`,
		semester, strings.Join(subjects, ", "), examDate, durationWeeks, hoursPerDay, weak)
	if weak != "" {
		prompt += fmt.Sprintf("\nGive extra attention to the weak subjects: %s", weak)
	}
	return prompt
}

// ResearchPrompt asks for compiled research on a legal topic.
func ResearchPrompt(query, researchType string) string {
	return fmt.Sprintf(`You are a legal research assistant helping LLB students with their research.

RESEARCH QUERY: %s
RESEARCH TYPE: %s

Provide comprehensive research assistance including:

1. **Research Overview**: Understanding of the research question
2. **Relevant Laws**: Applicable statutes, acts, and regulations
3. **Case Law**: Important cases related to the query
4. **Legal Principles**: Key legal principles and doctrines
5. **Recent Developments**: Latest changes or updates in this area
6. **Research Sources**: Where to find more information
7. **Research Tips**: How to conduct further research on this topic

Make your response detailed, accurate, and helpful for academic research purposes.
Include proper legal citations where applicable.`, query, researchType)
}
