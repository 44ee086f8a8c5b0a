package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_String(t *testing.T) {
	assert.Equal(t, "send_assets", RoleSendAssets.String())
	assert.Equal(t, "receive_shares", RoleReceiveShares.String())
	assert.Equal(t, "send_shares", RoleSendShares.String())
	assert.Equal(t, "receive_assets", RoleReceiveAssets.String())
}
