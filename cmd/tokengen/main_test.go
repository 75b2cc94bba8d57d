package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/pkg/auth"
)

func Test_Tokengen_IssuesValidToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auth:\n  enabled: true\n  secret: s3cret\n  issuer: campus\n"), 0o600))

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--config", path, "--subject", "alice", "--role", "registrar"})

	require.NoError(t, cmd.Execute())

	svc := auth.NewJWTService(auth.JWTConfig{SecretKey: "s3cret", TokenExp: time.Hour, TokenIssuer: "campus"})
	claims, err := svc.ValidateToken(strings.TrimSpace(stdout.String()))
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, string(models.RoleRegistrar), claims.RoleType)
	assert.Contains(t, stderr.String(), "expires")
}

func Test_Tokengen_Errors(t *testing.T) {
	dir := t.TempDir()
	noSecret := filepath.Join(dir, "nosecret.yaml")
	require.NoError(t, os.WriteFile(noSecret, []byte("logging:\n  level: info\n"), 0o600))
	withSecret := filepath.Join(dir, "secret.yaml")
	require.NoError(t, os.WriteFile(withSecret, []byte("auth:\n  secret: s3cret\n"), 0o600))

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing_secret", args: []string{"--config", noSecret}},
		{name: "unknown_role", args: []string{"--config", withSecret, "--role", "dean"}},
		{name: "positional_args", args: []string{"--config", withSecret, "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args)
			assert.Error(t, cmd.Execute())
		})
	}
}
