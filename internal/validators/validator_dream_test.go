// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dream-journal/models"
)

func TestNewDreamValidator(t *testing.T) {
	v := NewDreamValidator()
	require.NotNil(t, v)
}

func TestDreamValidator_Validate(t *testing.T) {
	ctx := context.Background()
	v := NewDreamValidator()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
		wantMsg string
	}{
		{name: "valid value", obj: models.Dream{Title: "Flying"}},
		{name: "valid pointer", obj: &models.Dream{Title: "Flying", Lucidity: models.NumberOf(2)}},
		{name: "missing title", obj: models.Dream{Body: "x"}, wantErr: ErrInvalidDream, wantMsg: "title is required"},
		{
			name:    "negative levels",
			obj:     models.Dream{Title: "A", Lucidity: models.NumberOf(-1), Importance: models.NumberOf(-2)},
			wantErr: ErrInvalidDream,
			wantMsg: "lucidity must be at least 0; importance must be at least 0",
		},
		{name: "nil pointer", obj: (*models.Dream)(nil), wantErr: ErrInvalidDream},
		{name: "unsupported type", obj: "dream", wantErr: ErrUnsupportedType},
		{name: "scoped to valid field", obj: models.Dream{Lucidity: models.NumberOf(1)}, fields: []string{FieldLucidity}},
		{name: "scoped to invalid field", obj: models.Dream{}, fields: []string{FieldTitle}, wantErr: ErrInvalidDream, wantMsg: "title is required"},
		{name: "unknown field", obj: models.Dream{Title: "A"}, fields: []string{"mood"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
