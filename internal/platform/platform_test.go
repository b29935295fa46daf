package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataDir(t *testing.T) {
	env := func(vars map[string]string) func(string) string {
		return func(k string) string { return vars[k] }
	}

	testCases := []struct {
		name string
		goos SupportedOS
		vars map[string]string
		want string
	}{
		{"android", Android, nil, "/data"},
		{"linux", Linux, nil, "/"},
		{"darwin", Darwin, nil, "/"},
		{"windows_default", Windows, nil, `C:\`},
		{"windows_system_drive", Windows, map[string]string{"SystemDrive": "D:"}, `D:\`},
		{"windows_trailing_slash", Windows, map[string]string{"SystemDrive": `E:\`}, `E:\`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dataDir(tc.goos, env(tc.vars)))
		})
	}
}

func TestIsSupported(t *testing.T) {
	assert.True(t, isSupported(Linux))
	assert.True(t, isSupported(Android))
	assert.True(t, isSupported(Windows))
	assert.False(t, isSupported("plan9"))
	assert.False(t, isSupported("js"))
}

func TestValidateSupport(t *testing.T) {
	assert.Equal(t, SupportedOS(runtime.GOOS), GetOS())
	if IsSupported() {
		assert.NoError(t, ValidateSupport())
	} else {
		assert.ErrorContains(t, ValidateSupport(), runtime.GOOS)
	}
}
