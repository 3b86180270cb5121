package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	got := FilterArgs([]string{"-a", ":8080", "-d", "dsn", "-x", "junk"}, []string{"-a", "-d"})
	assert.Equal(t, []string{"-a", ":8080", "-d", "dsn"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	got := FilterArgs([]string{"--config=conf.json", "-d=dsn", "-z=nope"}, []string{"--config", "-d"})
	assert.Equal(t, []string{"--config=conf.json", "-d=dsn"}, got)
}

func TestFilterArgs_FlagWithoutValue(t *testing.T) {
	got := FilterArgs([]string{"-a", "-d", "dsn"}, []string{"-a", "-d"})
	assert.Equal(t, []string{"-a", "-d", "dsn"}, got)
}

func TestFilterArgs_Empty(t *testing.T) {
	got := FilterArgs(nil, []string{"-a"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestJsonConfigFlags_ShortFlag(t *testing.T) {
	old := os.Args
	defer func() { os.Args = old }()

	os.Args = []string{"test", "-c", "conf.json"}
	assert.Equal(t, "conf.json", JsonConfigFlags())
}

func TestJsonConfigFlags_Absent(t *testing.T) {
	old := os.Args
	defer func() { os.Args = old }()

	os.Args = []string{"test", "-a", ":8080"}
	assert.Equal(t, "", JsonConfigFlags())
}
