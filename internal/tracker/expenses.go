package tracker

import (
	"context"
	"math"

	"github.com/tinytelemetry/widgetdeck/internal/form"
	"github.com/tinytelemetry/widgetdeck/internal/model"
)

const (
	MsgExpenseDescription = "Please enter a description"
	MsgExpenseAmount      = "Please enter a valid amount"
	MsgExpenseAmountMax   = "Amount must be at most 1000000000000"
)

// ExpenseForm is the raw input of one expense entry.
type ExpenseForm struct {
	description string
	amount      string
}

func (f *ExpenseForm) SetDescription(v string) { f.description = v }
func (f *ExpenseForm) SetAmount(v string)      { f.amount = v }
func (f *ExpenseForm) Reset()                  { *f = ExpenseForm{} }

func (f *ExpenseForm) Fields() []form.Field {
	return []form.Field{
		{Name: "description", Label: "Description", Placeholder: "Groceries", Get: func() string { return f.description }, Set: f.SetDescription},
		{Name: "amount", Label: "Amount", Placeholder: "12.50", Get: func() string { return f.amount }, Set: f.SetAmount},
	}
}

// ExpenseDraft is a validated expense before it gets an id.
type ExpenseDraft struct {
	Description string
	Amount      float64
}

func (f *ExpenseForm) Validate() form.Result[ExpenseDraft] {
	desc, err := form.Required(f.description, MsgExpenseDescription)
	if err != nil {
		return form.Fail[ExpenseDraft](err)
	}
	amount, err := form.PositiveNumber(f.amount, MsgExpenseAmount)
	if err != nil {
		return form.Fail[ExpenseDraft](err)
	}
	if _, err := form.AtMost(amount, form.MaxMagnitude, MsgExpenseAmountMax); err != nil {
		return form.Fail[ExpenseDraft](err)
	}
	return form.Ok(ExpenseDraft{Description: desc, Amount: amount})
}

// Expenses logs expenses under model.KeyExpenses.
type Expenses struct {
	list[model.Expense]
	env Env
}

func NewExpenses(kv model.KV, env Env) *Expenses {
	env = env.withDefaults()
	return &Expenses{list: newList[model.Expense](kv, model.KeyExpenses, env.Logger), env: env}
}

func (e *Expenses) Load(ctx context.Context) { e.load(ctx) }

func (e *Expenses) Items() []model.Expense { return e.snapshot() }

func (e *Expenses) Add(ctx context.Context, d ExpenseDraft) error {
	return e.add(ctx, model.Expense{
		ID:          e.env.NewID(),
		Description: d.Description,
		Amount:      d.Amount,
		CreatedAt:   e.env.Now().UTC(),
	})
}

func (e *Expenses) Remove(ctx context.Context, i int) error { return e.remove(ctx, i) }

// Total sums the logged amounts, rounded to cents. Stored entries are not
// re-validated, so the sum is kept in float64 cents rather than an int.
func (e *Expenses) Total() float64 {
	var cents float64
	for _, x := range e.items {
		cents += math.Round(x.Amount * 100)
	}
	return cents / 100
}
