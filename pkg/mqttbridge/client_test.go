package mqttbridge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"liyu1981.xyz/altitude-guard/pkg/common"
	_ "liyu1981.xyz/altitude-guard/pkg/testing"
)

func TestConnect_Unreachable(t *testing.T) {
	common.SetTestLoggerNop()

	client, err := Connect("tcp://127.0.0.1:1", "altitude-test", nil)
	assert.Error(t, err)
	assert.Nil(t, client)

	assert.NotPanics(t, func() { Disconnect(nil) })
}
