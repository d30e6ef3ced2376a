package cnst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderConstants(t *testing.T) {
	assert.Equal(t, "Bearer ", BearerPrefix)
	assert.Equal(t, "X-Lang", XLang)
	assert.Equal(t, LangEN, LangDefault)
	assert.Equal(t, "apiserver.yaml", ApiServerYaml)
}
