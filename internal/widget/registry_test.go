package widget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytelemetry/widgetdeck/internal/form"
)

func TestDefaultCatalogOrder(t *testing.T) {
	t.Parallel()

	r := Default()
	require.Equal(t, 20, r.Len())

	all := r.All()
	assert.Equal(t, IDSplit, all[0].ID)
	assert.Equal(t, IDTodo, all[len(all)-1].ID)

	forms := r.Forms()
	require.Len(t, forms, 11)
	for _, s := range forms {
		assert.Equal(t, KindForm, s.Kind)
	}
}

func TestFormConstructorsBuildIndependentForms(t *testing.T) {
	t.Parallel()

	deps := Deps{Now: func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }}.WithDefaults()
	for _, s := range Default().Forms() {
		a, b := s.NewForm(deps), s.NewForm(deps)
		require.NotNil(t, a, s.ID)
		if s.ID == IDEmoji {
			continue
		}
		require.NotEmpty(t, a.Fields(), s.ID)
		a.Fields()[0].Set("changed")
		assert.Empty(t, b.Fields()[0].Get(), "%s: forms share state", s.ID)
		assert.Equal(t, form.StatusInvalid, b.Evaluate().Status, s.ID)
	}
}

func TestNewRegistryRejectsBadSpecs(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry(Spec{ID: "a", Kind: KindTracker}, Spec{ID: "a", Kind: KindTracker})
	assert.Error(t, err)
	_, err = NewRegistry(Spec{Title: "nameless", Kind: KindTracker})
	assert.Error(t, err)
	_, err = NewRegistry(Spec{ID: "f"})
	assert.Error(t, err, "form widget needs a constructor")
}

func TestLookup(t *testing.T) {
	t.Parallel()

	s, ok := Default().Lookup(IDMood)
	require.True(t, ok)
	assert.Equal(t, KindTracker, s.Kind)
	assert.Equal(t, "mood", s.StoreKey)

	_, ok = Default().Lookup("nope")
	assert.False(t, ok)
}
