package log

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, DebugLevel, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestSetLevel(t *testing.T) {
	previous := logrus.GetLevel()
	defer logrus.SetLevel(previous)

	output := logrus.StandardLogger().Out
	defer logrus.SetOutput(output)
	buffer := bytes.NewBufferString("")
	logrus.SetOutput(buffer)

	SetLevel(InfoLevel)
	WithField("id", "apple").Debug("hidden")
	WithFields(Fields{"id": "banana"}).Info("visible")
	Infof("%d commodities", 2)

	assert.NotContains(t, buffer.String(), "hidden")
	assert.Contains(t, buffer.String(), "visible")
	assert.Contains(t, buffer.String(), "id=banana")
	assert.Contains(t, buffer.String(), "2 commodities")
}
