package main

import (
	"context"

	"github.com/aulahub/academia/core/student"
)

func (cli *commandLine) resetPassword(email, pwd string) error {
	if err := student.ValidatePassword(cli.validate, pwd); err != nil {
		return err
	}
	return cli.svc.student.ResetPassword(context.Background(), email, pwd)
}
