package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordInputValidate(t *testing.T) {
	t.Parallel()

	valid := RecordInput{FullName: "Alice", PopulationID: "P1"}
	assert.NoError(t, valid.Validate())

	noName := valid
	noName.FullName = ""
	err := noName.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "fullName")

	noPop := valid
	noPop.PopulationID = ""
	err = noPop.Validate()
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "populationId")
}
