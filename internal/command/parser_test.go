package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/koji/internal/domain"
	"github.com/hammamikhairi/koji/internal/logger"
)

func TestKeywordParser(t *testing.T) {
	parser := NewKeywordParser(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	tests := []struct {
		input       string
		wantType    domain.IntentType
		wantPayload string
	}{
		{"help", domain.IntentHelp, ""},
		{"?", domain.IntentHelp, ""},
		{"QUIT", domain.IntentQuit, ""},
		{"q", domain.IntentQuit, ""},

		{"list", domain.IntentList, ""},
		{"ls", domain.IntentList, ""},

		{"search miso", domain.IntentSearch, "miso"},
		{"find  Quick Lunch ", domain.IntentSearch, "Quick Lunch"},
		{"search", domain.IntentSearch, ""},
		{"/tofu", domain.IntentSearch, "tofu"},

		{"show 2", domain.IntentShow, "2"},
		{"show koji-miso-soup", domain.IntentShow, "koji-miso-soup"},

		{"new", domain.IntentNew, ""},
		{"+", domain.IntentNew, ""},
		{"edit 1", domain.IntentEdit, "1"},
		{"e chicken-rice-bowl", domain.IntentEdit, "chicken-rice-bowl"},

		{"set title Pasta night", domain.IntentSet, "title Pasta night"},
		{"set ingredients", domain.IntentSet, "ingredients"},
		{"set servings 150g | x", domain.IntentSet, "servings 150g | x"},

		{"draft", domain.IntentDraft, ""},
		{"save", domain.IntentSave, ""},
		{"cancel", domain.IntentCancel, ""},
		{"rm 3", domain.IntentDelete, "3"},
		{"delete oats-yogurt-fruit", domain.IntentDelete, "oats-yogurt-fruit"},

		{"go recipes", domain.IntentNavigate, "recipes"},
		{"ingredients", domain.IntentNavigate, "ingredients"},
		{"meal plan", domain.IntentNavigate, "meal plan"},
		{"home", domain.IntentNavigate, "dashboard"},

		{"ping", domain.IntentPing, ""},

		{"flambé the cat", domain.IntentUnknown, "flambé the cat"},
		{"edit", domain.IntentUnknown, "edit"},
		{"", domain.IntentUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			intent, err := parser.Parse(ctx, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, intent.Type, "input=%q", tt.input)
			assert.Equal(t, tt.wantPayload, intent.Payload, "input=%q", tt.input)
		})
	}
}
