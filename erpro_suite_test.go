package main_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestERPRO(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ERPRO Suite")
}
