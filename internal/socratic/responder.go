// Package socratic implements the offline Socratic tutor: a deterministic
// keyword-matched responder that answers questions with questions.
package socratic

import "strings"

// Greeting opens every tutor conversation.
const Greeting = "Hello! I am your Socratic tutor for agentic AI security. My goal is not to give you direct answers, but to guide you with questions so you discover the knowledge yourself. Which AI security topic would you like to reflect on today?"

// QuickQuestions are suggested conversation starters.
var QuickQuestions = []string{
	"How do prompt injection attacks work?",
	"What is AI alignment and why does it matter?",
	"How do I threat model an AI agent?",
	"What are the best defenses against jailbreaking?",
}

// rule pairs trigger keywords with a canned Socratic reply. Rules are
// checked in order; the first keyword hit wins.
type rule struct {
	keywords []string
	reply    string
}

var rules = []rule{
	{
		keywords: []string{"prompt injection", "injection"},
		reply:    "Interesting question about prompt injection! Before we go deeper, let me ask you something: why do you think LLMs are vulnerable to this kind of attack in the first place? What fundamental characteristic of how they work makes it possible?",
	},
	{
		keywords: []string{"jailbreak", "escape"},
		reply:    "I understand you want to grasp jailbreaking. Think about this: if you were designing a system to prevent jailbreaks, what approach would you take? What would your first 3 security controls be?",
	},
	{
		keywords: []string{"alignment"},
		reply:    "Alignment is fundamental. Reflect on this: what is the difference between a model that \"understands\" an instruction and a model that is \"aligned\" with human values? Are they equivalent concepts?",
	},
	{
		keywords: []string{"threat model", "threat modeling"},
		reply:    "Excellent topic. Consider this: when you do threat modeling for a traditional application versus an AI system, what new attack surfaces appear? Can you identify at least 3 vectors that would not exist in conventional software?",
	},
	{
		keywords: []string{"yes", "exactly", "correct"},
		reply:    "Very good, I can see you are on the right track. Now let's go deeper: could you explain the \"why\" behind that answer? What fundamental principles support it?",
	},
	{
		keywords: []string{"i don't know", "not sure"},
		reply:    "It is fine not to know the answer right away. Let's try another angle: what additional information would you need to answer this question? What analogies from other domains could help you?",
	},
}

// defaultReply is used when no keyword matches.
const defaultReply = "That is an interesting observation. Before I give you my perspective, I would like you to reflect: what could be the security implications of what you just mentioned? What edge cases should we consider?"

// Respond picks the canned Socratic reply for a student message.
// Matching is case-insensitive substring search in rule order.
func Respond(message string) string {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.reply
			}
		}
	}
	return defaultReply
}
