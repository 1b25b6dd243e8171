package calc

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/quiz.yaml
var quizYAML []byte

// Question is one multiple-choice quiz item; Answer indexes Choices.
type Question struct {
	Prompt  string   `yaml:"prompt"`
	Choices []string `yaml:"choices"`
	Answer  int      `yaml:"answer"`
}

var (
	ErrQuizFinished    = errors.New("quiz is finished")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrNotAnswered     = errors.New("answer the question first")
	ErrChoiceInvalid   = errors.New("choice out of range")
)

// ParseQuestions decodes a YAML question set and checks every answer
// index against its choices.
func ParseQuestions(data []byte) ([]Question, error) {
	var doc struct {
		Questions []Question `yaml:"questions"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing quiz: %w", err)
	}
	if len(doc.Questions) == 0 {
		return nil, errors.New("parsing quiz: no questions")
	}
	for i, q := range doc.Questions {
		if len(q.Choices) < 2 {
			return nil, fmt.Errorf("question %d: need at least two choices", i+1)
		}
		if q.Answer < 0 || q.Answer >= len(q.Choices) {
			return nil, fmt.Errorf("question %d: answer %d out of range", i+1, q.Answer)
		}
	}
	return doc.Questions, nil
}

// DefaultQuestions returns the embedded question set.
func DefaultQuestions() []Question {
	qs, err := ParseQuestions(quizYAML)
	if err != nil {
		panic(err)
	}
	return qs
}

// Quiz walks a fixed list of questions: answer, then next, then score.
type Quiz struct {
	questions []Question
	index     int
	score     int
	answered  bool
	correct   bool
}

func NewQuiz(questions []Question) *Quiz {
	return &Quiz{questions: questions}
}

// Current returns the active question; ok is false once finished.
func (q *Quiz) Current() (Question, bool) {
	if q.Finished() {
		return Question{}, false
	}
	return q.questions[q.index], true
}

// Answer records the choice for the active question and reports whether it
// was correct.
func (q *Quiz) Answer(choice int) (bool, error) {
	cur, ok := q.Current()
	if !ok {
		return false, ErrQuizFinished
	}
	if q.answered {
		return false, ErrAlreadyAnswered
	}
	if choice < 0 || choice >= len(cur.Choices) {
		return false, ErrChoiceInvalid
	}
	q.answered = true
	q.correct = choice == cur.Answer
	if q.correct {
		q.score++
	}
	return q.correct, nil
}

// Next moves past an answered question.
func (q *Quiz) Next() error {
	if q.Finished() {
		return ErrQuizFinished
	}
	if !q.answered {
		return ErrNotAnswered
	}
	q.index++
	q.answered = false
	q.correct = false
	return nil
}

func (q *Quiz) Answered() bool    { return q.answered }
func (q *Quiz) LastCorrect() bool { return q.correct }
func (q *Quiz) Finished() bool    { return q.index >= len(q.questions) }
func (q *Quiz) Score() int        { return q.score }
func (q *Quiz) Total() int        { return len(q.questions) }
func (q *Quiz) Position() int     { return q.index + 1 }

func (q *Quiz) Restart() {
	q.index, q.score = 0, 0
	q.answered, q.correct = false, false
}
