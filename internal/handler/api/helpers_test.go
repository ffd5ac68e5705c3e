//go:build unit

package api_test

import "fleetrent/internal/infra"

func notFoundErr() error {
	return infra.WrapRepoErr(infra.KindNotFound, "not found", nil)
}
