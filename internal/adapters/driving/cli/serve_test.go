package cli

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_HasAddrFlag(t *testing.T) {
	flag := serveCmd.Flags().Lookup("addr")
	require.NotNil(t, flag)
	assert.Equal(t, "a", flag.Shorthand)
	assert.Equal(t, "", flag.DefValue)
}

func TestMCPCmd_HasServe(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range mcpCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Equal(t, []string{"serve"}, names)

	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPListenAddr(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		addr    string
		want    string
		wantErr bool
	}{
		{name: "stdio by default", port: "0", want: ""},
		{name: "port", port: "8081", want: ":8081"},
		{name: "addr wins", port: "0", addr: "127.0.0.1:9000", want: "127.0.0.1:9000"},
		{name: "port out of range", port: "70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := mcpAddr
			defer func() { mcpAddr = original }()
			mcpAddr = tt.addr

			cmd := &cobra.Command{}
			cmd.Flags().IntP("port", "p", 0, "")
			require.NoError(t, cmd.Flags().Set("port", tt.port))

			got, err := mcpListenAddr(cmd)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
