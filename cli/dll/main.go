package main

import (
	"github.com/sirupsen/logrus"
)

func main() {
	if err := MainCmd().Execute(); err != nil {
		fields, cause := errorFields(err)
		logrus.WithFields(fields).Fatal(cause)
	}
}
