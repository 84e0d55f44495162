package validator

import (
	"testing"

	playground "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string `validate:"required"`
	Role     string `validate:"omitempty,role"`
	CardType string `validate:"required,card_type"`
	Stamp    string `validate:"stamp_type"`
}

func TestCustomValidator(t *testing.T) {
	v := New()

	t.Run("accepts known enum values", func(t *testing.T) {
		assert.NoError(t, v.Validate(&sample{Name: "a", Role: "admin", CardType: "ascii_mifare", Stamp: "coffee"}))
		assert.NoError(t, v.Validate(&sample{Name: "a", CardType: "generic"}))
	})

	t.Run("reports every failing field", func(t *testing.T) {
		err := v.Validate(&sample{Role: "root", CardType: "felica", Stamp: "tea"})
		var verrs playground.ValidationErrors
		require.ErrorAs(t, err, &verrs)

		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		assert.ElementsMatch(t, []string{"Name", "Role", "CardType", "Stamp"}, fields)
	})
}
