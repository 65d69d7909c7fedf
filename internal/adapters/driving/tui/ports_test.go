package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekrasovka/libsearch/internal/core/domain"
	"github.com/nekrasovka/libsearch/internal/core/services"
)

func newTestPorts() *Ports {
	session := services.NewSession(services.SessionOptions{})
	years := services.NewYearRangeControl(session.Years(), func(r domain.YearRange) { session.SetYears(r) })
	return NewPorts(session, years, services.NewResultActionService(nil), services.NewSnippetFormatter(nil, nil))
}

func TestNewPorts(t *testing.T) {
	p := newTestPorts()

	require.NotNil(t, p)
	assert.NotNil(t, p.Session)
	assert.NotNil(t, p.Years)
	assert.NotNil(t, p.ResultAction)
	assert.NotNil(t, p.Formatter)
}

func TestPorts_Validate(t *testing.T) {
	assert.NoError(t, newTestPorts().Validate())

	p := newTestPorts()
	p.Session = nil
	assert.ErrorIs(t, p.Validate(), ErrMissingSearchSession)

	p = newTestPorts()
	p.Years = nil
	assert.ErrorIs(t, p.Validate(), ErrMissingYearControl)

	var nilPorts *Ports
	assert.ErrorIs(t, nilPorts.Validate(), ErrInvalidPorts)
}

func TestPorts_OptionalServices(t *testing.T) {
	p := newTestPorts()
	p.ResultAction = nil
	p.Formatter = nil

	assert.NoError(t, p.Validate())
}
