package shop

import mathrand "math/rand"

// Question is one audit quiz entry. Correct is never exposed in snapshots.
type Question struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Correct int      `json:"-"`
}

var questionBank = []Question{
	{
		Prompt:  "A rush hour begins. What's your best move?",
		Options: []string{"Restock immediately", "Boost to serve faster", "Upgrade fixtures mid-rush"},
		Correct: 1,
	},
	{
		Prompt:  "Impatient customers stack up. What helps reduce loss?",
		Options: []string{"Auto staff", "More product variety", "Rename the shop"},
		Correct: 0,
	},
	{
		Prompt:  "How to raise average spend quickly?",
		Options: []string{"Boost", "Product upgrade", "Fixtures upgrade"},
		Correct: 1,
	},
}

// auditSession is transient state for an open audit modal. A fresh open
// re-randomizes the question.
type auditSession struct {
	question Question
}

func pickQuestion(rng *mathrand.Rand) Question {
	return questionBank[rng.Intn(len(questionBank))]
}
