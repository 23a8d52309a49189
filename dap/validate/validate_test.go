package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"goa.design/dap-reactor/dap/validate"
)

func TestValidateUnregisteredCommandPasses(t *testing.T) {
	r := validate.NewRegistry()
	assert.NoError(t, r.Validate("launch", []byte(`{"anything":true}`)))
}

func TestValidateAcceptsConformingPayload(t *testing.T) {
	r := validate.NewRegistry()
	schema := []byte(`{
		"type": "object",
		"properties": {"program": {"type": "string"}},
		"required": ["program"]
	}`)
	require.NoError(t, r.Register("launch", schema))

	assert.NoError(t, r.Validate("launch", []byte(`{"program":"/bin/true"}`)))
}

func TestValidateRejectsNonConformingPayload(t *testing.T) {
	r := validate.NewRegistry()
	schema := []byte(`{
		"type": "object",
		"properties": {"program": {"type": "string"}},
		"required": ["program"]
	}`)
	require.NoError(t, r.Register("launch", schema))

	err := r.Validate("launch", []byte(`{}`))
	assert.Error(t, err)
}

func TestValidateEmptyPayloadTreatedAsEmptyObject(t *testing.T) {
	r := validate.NewRegistry()
	schema := []byte(`{"type": "object"}`)
	require.NoError(t, r.Register("configurationDone", schema))

	assert.NoError(t, r.Validate("configurationDone", nil))
}

func TestRegisterReplacesPreviousSchema(t *testing.T) {
	r := validate.NewRegistry()
	loose := []byte(`{"type": "object"}`)
	strict := []byte(`{"type": "object", "required": ["id"]}`)

	require.NoError(t, r.Register("customEvent", loose))
	require.NoError(t, r.Register("customEvent", strict))

	assert.Error(t, r.Validate("customEvent", []byte(`{}`)))
}

func TestRegisterRejectsMalformedSchema(t *testing.T) {
	r := validate.NewRegistry()
	err := r.Register("launch", []byte(`not json`))
	assert.Error(t, err)
}
