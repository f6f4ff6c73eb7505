package logsvc

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aulahub/academia/core"
)

func TestRollbarLogger(t *testing.T) {
	var buf bytes.Buffer
	conf := &core.Config{Env: "DEV"} // no token: nothing leaves the process
	logger := NewRollbarLogger(log.New(&buf, "", 0), conf)

	logger.Error("failed to grade", errors.New("boom"), core.Person{ID: "ana@example.com"})
	assert.Equal(t, "failed to grade\nboom\n{ID:ana@example.com Name: Email:}\n", buf.String())

	buf.Reset()
	conf.TestMode = true
	logger = NewRollbarLogger(log.New(&buf, "", 0), conf)
	logger.Info("quiet")
	assert.Empty(t, buf.String())
}

func TestRollbarLogger_prepare(t *testing.T) {
	logger := RollbarLogger{}
	extras := map[string]interface{}{"grade_id": 3}
	err := errors.New("boom")

	args := logger.prepare("msg", []interface{}{err, core.Person{ID: "a"}, extras, core.Person{ID: "b"}})
	assert.Equal(t, []interface{}{"msg", err, extras}, args)
}
