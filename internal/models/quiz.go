package models

import (
	"slices"
	"strconv"
	"strings"
)

// QuizStatus represents a state of the quiz state machine
type QuizStatus string

const (
	QuizStatusNotStarted QuizStatus = "not_started"
	QuizStatusInProgress QuizStatus = "in_progress"
	QuizStatusFinished   QuizStatus = "finished"
)

// QuizSession is a per-browser progress record of one recall quiz.
//
// Items is a snapshot of the category taken when the quiz starts,
// later changes of the dataset do not affect a running quiz.
// Invariants: 0 <= Position <= len(Items) and 0 <= Score <= Position.
type QuizSession struct {
	Status   QuizStatus `json:"status"`
	Category string     `json:"category"`
	Items    []Word     `json:"items"`
	Position int        `json:"position"`
	Score    int        `json:"score"`
}

// AnswerResult is the outcome of one submitted answer
type AnswerResult struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	Finished      bool   `json:"finished"`
	// Exhausted is set when there was no question left to answer.
	// Correct and CorrectAnswer are meaningless in that case.
	Exhausted bool `json:"-"`
}

// QuizResults is a read-only summary of a quiz
type QuizResults struct {
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
}

// NewQuizSession starts a quiz over the given words
func NewQuizSession(category string, items []Word) *QuizSession {
	return &QuizSession{
		Status:   QuizStatusInProgress,
		Category: category,
		Items:    slices.Clone(items),
	}
}

// State returns the current state, a nil session has not been started
func (q *QuizSession) State() QuizStatus {
	if q == nil || q.Status == "" {
		return QuizStatusNotStarted
	}
	return q.Status
}

// Total returns the number of questions
func (q *QuizSession) Total() int {
	if q == nil {
		return 0
	}
	return len(q.Items)
}

// Current returns the 1-based number of the question to be answered next
func (q *QuizSession) Current() int {
	if q == nil {
		return 0
	}
	return min(q.Position+1, len(q.Items))
}

// Answer checks the answer to the current question and advances the quiz.
//
// The answer is trimmed and compared case-insensitively with the stored translation,
// only an exact match counts.
// If no question is left (the quiz is finished or was never started) Exhausted is returned and the session is not changed.
func (q *QuizSession) Answer(answer string) AnswerResult {
	if q == nil || q.Position >= len(q.Items) {
		return AnswerResult{Finished: true, Exhausted: true}
	}

	item := q.Items[q.Position]
	correct := strings.ToLower(strings.TrimSpace(answer)) == strings.ToLower(item.Translation)
	if correct {
		q.Score++
	}
	q.Position++

	finished := q.Position == len(q.Items)
	if finished {
		q.Status = QuizStatusFinished
	}

	return AnswerResult{
		Correct:       correct,
		CorrectAnswer: item.Translation,
		Finished:      finished,
	}
}

// Results summarizes the quiz without changing it.
// Percentage is rounded to one decimal place, ties to even on the exact decimal value, and is 0 for an empty quiz.
func (q *QuizSession) Results() QuizResults {
	if q == nil {
		return QuizResults{}
	}

	results := QuizResults{
		Score:    q.Score,
		Total:    len(q.Items),
		Category: q.Category,
	}
	if results.Total > 0 {
		results.Percentage = roundPercentage(float64(results.Score) / float64(results.Total) * 100)
	}
	return results
}

// roundPercentage rounds to one decimal place using the exact decimal value of p,
// so a true tie like 6.25 rounds to even
func roundPercentage(p float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(p, 'f', 1, 64), 64)
	if err != nil {
		return p
	}
	return rounded
}
