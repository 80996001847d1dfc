// ABOUTME: Ginkgo suite for pomutils acceptance tests
// ABOUTME: Builds the CLI binary once and shares it across specs
package acceptance

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pomframework/pomutils/test/helpers"
)

var binaryPath string

func TestAcceptance(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Acceptance Suite")
}

var _ = BeforeSuite(func() {
	binaryPath = helpers.BuildBinary()
})
