package server

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/studentboard/internal/logging"
	"github.com/dmitrijs2005/studentboard/internal/server/config"
	"github.com/dmitrijs2005/studentboard/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.ListenAddr = "127.0.0.1:0"
	c.SecretKey = "secret"
	c.LoginUser = "admin"
	c.LoginPass = "pass"
	c.StudentData = `[{"name":"A","difficulty level":""},{"name":"B","difficulty level":"high"}]`
	return c
}

func TestNewApp(t *testing.T) {
	app, err := newApp(testConfig(), logging.Nop{})
	require.NoError(t, err)

	assert.Equal(t, 2, app.dashboard.Summary().Total)
	assert.Equal(t, 1, app.dashboard.Summary().Difficulty)
}

func TestNewApp_BadDataset(t *testing.T) {
	for _, raw := range []string{`{"a":1}`, `not json`, `[1,2]`} {
		c := testConfig()
		c.StudentData = raw

		_, err := newApp(c, logging.Nop{})
		assert.ErrorContains(t, err, "STUDENT_DATA", raw)
	}
}

func TestNewApp_CustomFields(t *testing.T) {
	c := testConfig()
	c.StudentData = `[{"困难等级":"一般","心里疑问":"是"},{"困难等级":null,"心里疑问":"否"}]`
	c.DifficultyField = "困难等级"
	c.PsychField = "心里疑问"
	c.PsychMarker = "是"

	app, err := newApp(c, logging.Nop{})
	require.NoError(t, err)

	assert.Equal(t, 1, app.dashboard.Summary().Difficulty)
	assert.Equal(t, 1, app.dashboard.Summary().Psych)
}

func TestSummaryRules(t *testing.T) {
	c := testConfig()
	c.PsychMarker = ""
	c.PsychField = "concern"

	assert.Equal(t, services.SummaryRules{
		DifficultyField: "difficulty level",
		PsychField:      "concern",
		PsychMarker:     "yes",
	}, summaryRules(c))
}

func TestRun_StopsOnCancel(t *testing.T) {
	app, err := newApp(testConfig(), logging.Nop{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}
