package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests in this file mutate the package logger and are not run in parallel

func TestSetupGlobalLogger(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, CloseLogger())
		require.NoError(t, SetupGlobalLogger(nil))
	})

	require.ErrorIs(t, SetupGlobalLogger(&Config{Output: "carrier-pigeon"}), errUnhandledOutputWriter)
	require.ErrorIs(t, SetupGlobalLogger(&Config{Output: "file"}), errFileSettingsUnset)
	require.Error(t, SetupGlobalLogger(&Config{Level: "shouty"}))
	require.ErrorIs(t, SetupGlobalLogger(&Config{SubLoggers: []SubLoggerConfig{{Name: "nope", Level: "debug"}}}), errSubLoggerNotFound)

	fileName := filepath.Join(t.TempDir(), "test.log")
	c := GenDefaultSettings()
	c.Output = "file"
	c.JSON = true
	c.FileSettings.FileName = fileName
	c.SubLoggers = []SubLoggerConfig{{Name: "requester", Level: "debug"}}
	require.NoError(t, SetupGlobalLogger(&c))

	assert.True(t, IsDebug(RequestSys), "RequestSys should be raised to debug")
	assert.False(t, IsDebug(ExchangeSys), "ExchangeSys should stay at info")

	Debugf(RequestSys, "request path: %s", "/api/v3/time")
	Debugf(ExchangeSys, "should not be written")
	Warnf(ExchangeSys, "weight %d", 1200)

	require.NoError(t, CloseLogger())
	contents, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Contains(t, string(contents), `"message":"request path: /api/v3/time"`)
	assert.Contains(t, string(contents), `"sublogger":"REQUESTER"`)
	assert.Contains(t, string(contents), `"message":"weight 1200"`)
	assert.NotContains(t, string(contents), "should not be written")
}

func TestGetWritersBoth(t *testing.T) {
	t.Parallel()
	_, _, err := getWriters(&Config{Output: "both"})
	require.ErrorIs(t, err, errFileSettingsUnset)

	fileName := filepath.Join(t.TempDir(), "both.log")
	w, closer, err := getWriters(&Config{Output: "both", FileSettings: &FileConfig{FileName: fileName}})
	require.NoError(t, err)
	require.NotNil(t, closer, "file output must be closable")
	_, err = w.Write([]byte("to file and stdout\n"))
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	contents, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Equal(t, "to file and stdout\n", string(contents))

	_, closer, err = getWriters(&Config{Output: "file|both", FileSettings: &FileConfig{FileName: fileName}})
	require.NoError(t, err)
	require.NoError(t, closer.Close())
}

func TestSetupGlobalLoggerBoth(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, CloseLogger())
		require.NoError(t, SetupGlobalLogger(nil))
	})
	c := GenDefaultSettings()
	c.Output = "both"
	c.FileSettings.FileName = filepath.Join(t.TempDir(), "both.log")
	require.NoError(t, SetupGlobalLogger(&c))
}

func TestDisabledLogger(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, SetupGlobalLogger(nil)) })
	disabled := false
	fileName := filepath.Join(t.TempDir(), "never.log")
	require.NoError(t, SetupGlobalLogger(&Config{
		Enabled:      &disabled,
		Output:       "file",
		FileSettings: &FileConfig{FileName: fileName},
	}))
	Errorf(Global, "dropped")
	_, err := os.Stat(fileName)
	assert.True(t, os.IsNotExist(err), "disabled logger must not create a file")
}

func TestSubLoggerName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "REQUESTER", RequestSys.Name())
	assert.Equal(t, "LOG", Global.Name())
	var nilLogger *SubLogger
	assert.False(t, nilLogger.enabled(0))
}
