package widget

import (
	"github.com/tinytelemetry/widgetdeck/internal/calc"
	"github.com/tinytelemetry/widgetdeck/internal/form"
	"github.com/tinytelemetry/widgetdeck/internal/model"
)

// Widget ids.
const (
	IDSplit     = "split"
	IDTip       = "tip"
	IDAge       = "age"
	IDBMI       = "bmi"
	IDConvert   = "convert"
	IDDateDiff  = "datediff"
	IDWordCount = "wordcount"
	IDLoan      = "loan"
	IDRandom    = "random"
	IDPassword  = "password"
	IDEmoji     = "emoji"
	IDTicTacToe = "tictactoe"
	IDQuiz      = "quiz"
	IDStopwatch = "stopwatch"
	IDCountdown = "countdown"
	IDJokes     = "jokes"
	IDNotes     = "notes"
	IDMood      = "mood"
	IDExpenses  = "expenses"
	IDTodo      = "todo"
)

func catalog() []Spec {
	return []Spec{
		{ID: IDSplit, Title: "Bill Splitter", Description: "Split a total evenly between people",
			NewForm: func(Deps) form.Evaluator { return &calc.SplitForm{} }},
		{ID: IDTip, Title: "Tip Calculator", Description: "Tip, total and share per person",
			NewForm: func(Deps) form.Evaluator { return &calc.TipForm{} }},
		{ID: IDAge, Title: "Age Calculator", Description: "Age from a date of birth",
			NewForm: func(d Deps) form.Evaluator { return calc.NewAgeForm(d.Now) }},
		{ID: IDBMI, Title: "BMI", Description: "Body mass index from weight and height",
			NewForm: func(Deps) form.Evaluator { return &calc.BMIForm{} }},
		{ID: IDConvert, Title: "Unit Converter", Description: "Length, weight and temperature",
			NewForm: func(Deps) form.Evaluator { return &calc.ConvertForm{} }},
		{ID: IDDateDiff, Title: "Date Difference", Description: "Days between two dates",
			NewForm: func(Deps) form.Evaluator { return &calc.DateDiffForm{} }},
		{ID: IDWordCount, Title: "Word Counter", Description: "Words, characters and reading time",
			NewForm: func(Deps) form.Evaluator { return &calc.WordCountForm{} }},
		{ID: IDLoan, Title: "Loan Calculator", Description: "Monthly payment of an amortized loan",
			NewForm: func(Deps) form.Evaluator { return &calc.LoanForm{} }},
		{ID: IDRandom, Title: "Random Number", Description: "Uniform integer between two bounds",
			NewForm: func(d Deps) form.Evaluator { return calc.NewRandomForm(d.Rand) }},
		{ID: IDPassword, Title: "Password Generator", Description: "Random password with chosen classes",
			NewForm: func(d Deps) form.Evaluator { return calc.NewPasswordForm(d.Rand) }},
		{ID: IDEmoji, Title: "Random Emoji", Description: "Pick an emoji at random",
			NewForm: func(d Deps) form.Evaluator { return calc.NewEmojiPicker(d.Rand) }},

		{ID: IDTicTacToe, Title: "Tic-Tac-Toe", Description: "Two players, one board", Kind: KindInteractive},
		{ID: IDQuiz, Title: "Quiz", Description: "Multiple-choice trivia", Kind: KindInteractive},
		{ID: IDStopwatch, Title: "Stopwatch", Description: "Start, stop and reset", Kind: KindInteractive},
		{ID: IDCountdown, Title: "Countdown", Description: "Count down from a number of seconds", Kind: KindInteractive},
		{ID: IDJokes, Title: "Jokes", Description: "Random jokes, save your favourites",
			Kind: KindInteractive, StoreKey: model.KeySavedJokes},

		{ID: IDNotes, Title: "Notes", Description: "Quick text notes", Kind: KindTracker, StoreKey: model.KeyNotes},
		{ID: IDMood, Title: "Mood Tracker", Description: "One mood a day, charted", Kind: KindTracker, StoreKey: model.KeyMood},
		{ID: IDExpenses, Title: "Expenses", Description: "Log spending with a running total", Kind: KindTracker, StoreKey: model.KeyExpenses},
		{ID: IDTodo, Title: "To-Do", Description: "Tasks you can tick off", Kind: KindTracker, StoreKey: model.KeyTodo},
	}
}

// Default returns the built-in catalog.
func Default() *Registry {
	r, err := NewRegistry(catalog()...)
	if err != nil {
		panic(err)
	}
	return r
}
