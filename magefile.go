//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var (
	binDir  = "bin"
	appName = "coupon-admin"
	// keep in step with github.com/a-h/templ in go.mod
	templPkg = "github.com/a-h/templ/cmd/templ@v0.3.865"
)

var Default = Build

func Build() error {
	mg.Deps(Gen)
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}
	out := filepath.Join(binDir, appName)
	fmt.Println("Building:", out)
	return sh.RunWithV(map[string]string{"CGO_ENABLED": "0"}, "go", "build", "-trimpath", "-o", out, "./cmd")
}

func Run() error {
	mg.Deps(Gen)
	return sh.RunWithV(map[string]string{"GIN_MODE": "debug"}, "go", "run", "./cmd")
}

// Gen regenerates the *_templ.go files next to each .templ page.
func Gen() error {
	fmt.Println("Generating templ components...")
	if _, err := exec.LookPath("templ"); err == nil {
		return sh.RunV("templ", "generate", "-path", "internal/handler/templates")
	}
	return sh.RunV("go", "run", templPkg, "generate", "-path", "internal/handler/templates")
}

// Tools installs the templ CLI used by Gen.
func Tools() error {
	return sh.RunV("go", "install", templPkg)
}

// Unit runs the unit-tagged tests.
func Unit() error {
	return sh.RunV("go", "test", "-tags=unit", "-count=1", "./internal/...", "./tests/common/...")
}

// E2E needs Docker: the backend is a WireMock container.
func E2E() error {
	return sh.RunV("go", "test", "-tags=e2e", "-count=1", "-p=1", "./tests/e2e/...")
}

func Test() {
	mg.SerialDeps(Unit, E2E)
}

// Mocks regenerates tests/mock from the use case interfaces.
func Mocks() error {
	sources := []struct{ src, dst, pkg string }{
		{"internal/usecase/commands/coupon.go", "tests/mock/commands/coupon.go", "commandsmock"},
		{"internal/usecase/commands/store.go", "tests/mock/commands/store.go", "commandsmock"},
		{"internal/usecase/commands/category.go", "tests/mock/commands/category.go", "commandsmock"},
		{"internal/usecase/commands/auth.go", "tests/mock/commands/auth.go", "commandsmock"},
		{"internal/usecase/commands/ports.go", "tests/mock/commands/ports.go", "commandsmock"},
		{"internal/usecase/queries/stores.go", "tests/mock/queries/stores.go", "queriesmock"},
		{"internal/usecase/queries/coupons.go", "tests/mock/queries/coupons.go", "queriesmock"},
		{"internal/usecase/queries/categories.go", "tests/mock/queries/categories.go", "queriesmock"},
	}
	for _, s := range sources {
		if err := sh.RunV("go", "run", "go.uber.org/mock/mockgen@v0.5.2",
			"-source="+s.src, "-destination="+s.dst, "-package="+s.pkg); err != nil {
			return err
		}
	}
	return nil
}

// Swagger regenerates the JSON route docs.
func Swagger() error {
	return sh.RunV("go", "run", "github.com/swaggo/swag/cmd/swag@v1.8.12", "init", "-g", "cmd/main.go", "-o", "docs")
}

func Tidy() error {
	return sh.RunV("go", "mod", "tidy")
}
