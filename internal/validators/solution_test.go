// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-uaa/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolutionValidator_CompositeUpdate(t *testing.T) {
	v := NewSolutionValidator()
	ctx := context.Background()

	valid := models.CompositeSolutionUpdate{
		UUID:    "0192f0c4-7b1d-7c3e-8f00-000000000001",
		Name:    "Loan model, v.2",
		Version: "1.0-beta",
		Summary: "Scores loan applications",
	}

	tests := []struct {
		name    string
		mutate  func(*models.CompositeSolutionUpdate)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.CompositeSolutionUpdate) {}},
		{name: "unicode letters", mutate: func(u *models.CompositeSolutionUpdate) { u.Name = "Модель Über 3" }},
		{name: "empty summary", mutate: func(u *models.CompositeSolutionUpdate) { u.Summary = "" }},
		{name: "missing uuid", mutate: func(u *models.CompositeSolutionUpdate) { u.UUID = "" }, wantErr: ErrInvalidUUID},
		{name: "missing name", mutate: func(u *models.CompositeSolutionUpdate) { u.Name = "" }, wantErr: ErrNameRequired},
		{name: "missing version", mutate: func(u *models.CompositeSolutionUpdate) { u.Version = "" }, wantErr: ErrVersionRequired},
		{name: "long name", mutate: func(u *models.CompositeSolutionUpdate) { u.Name = strings.Repeat("n", CompositeFieldMaxLength+1) }, wantErr: ErrFieldTooLong},
		{name: "long summary", mutate: func(u *models.CompositeSolutionUpdate) { u.Summary = strings.Repeat("s", CompositeFieldMaxLength+1) }, wantErr: ErrFieldTooLong},
		{name: "forbidden character", mutate: func(u *models.CompositeSolutionUpdate) { u.Version = "v1;drop" }, wantErr: ErrInvalidCharacter},
		{name: "angle brackets", mutate: func(u *models.CompositeSolutionUpdate) { u.Summary = "<b>" }, wantErr: ErrInvalidCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update := valid
			tt.mutate(&update)

			err := v.Validate(ctx, update)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateCompositeField_MaxLengthCountsRunes(t *testing.T) {
	require.NoError(t, ValidateCompositeField(FieldName, strings.Repeat("ж", CompositeFieldMaxLength)))

	err := ValidateCompositeField(FieldName, strings.Repeat("ж", CompositeFieldMaxLength+1))
	require.ErrorIs(t, err, ErrFieldTooLong)
	assert.Contains(t, err.Error(), "name")
}

func TestSolutionValidator_Scoped(t *testing.T) {
	v := NewSolutionValidator()

	update := &models.CompositeSolutionUpdate{Name: "ok"}
	require.NoError(t, v.Validate(context.Background(), update, FieldName))
	require.ErrorIs(t, v.Validate(context.Background(), update, FieldVersion), ErrVersionRequired)
	require.ErrorIs(t, v.Validate(context.Background(), models.Solution{}), ErrUnsupportedType)
}
