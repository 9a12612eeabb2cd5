package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExtractionResult_ValidDocument(t *testing.T) {
	doc := []byte(`{
		"skills": [
			{"name": "Python", "category": "programming_languages", "confidence": 0.95}
		],
		"education": [
			{"degree": "B.Sc.", "field": "Computer Science", "required": false, "preferred": false}
		],
		"certifications": [
			{"name": "CKA", "issuer": "CNCF", "required": false, "preferred": false}
		]
	}`)

	assert.NoError(t, ValidateExtractionResult(doc))
}

func TestValidateExtractionResult_EmptySkillListIsValid(t *testing.T) {
	assert.NoError(t, ValidateExtractionResult([]byte(`{"skills": []}`)))
}

func TestValidateExtractionResult_MissingRequiredFields(t *testing.T) {
	doc := []byte(`{"skills": [{"confidence": 0.9}]}`)

	err := ValidateExtractionResult(doc)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateExtractionResult_WrongTypes(t *testing.T) {
	doc := []byte(`{"skills": "not an array"}`)

	err := ValidateExtractionResult(doc)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateExtractionResult_MalformedJSON(t *testing.T) {
	err := ValidateExtractionResult([]byte(`{"skills": [`))

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "skill_extraction_result", loadErr.Schema)
}
