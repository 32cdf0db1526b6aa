package req

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

func TestDecode(t *testing.T) {
	p, err := Decode[payload](strings.NewReader(`{"email":"a@b.co","name":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", p.Email)

	_, err = Decode[payload](strings.NewReader(""))
	assert.Error(t, err)

	_, err = Decode[payload](strings.NewReader("{"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(payload{Email: "a@b.co"}))
	assert.Error(t, Validate(payload{}))
	assert.Error(t, Validate(payload{Email: "not-an-email"}))
}
