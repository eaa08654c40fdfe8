// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flow

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/medvision/internal/normalize"
	"github.com/pdiddy/medvision/pkg/types"
)

// StatusFetcher is the part of the service the system-status flow needs.
type StatusFetcher interface {
	Status(ctx context.Context) (types.StatusResponse, error)
	Collections(ctx context.Context) (types.CollectionsResponse, error)
}

// StatusInput carries no parameters; the status flow always validates.
type StatusInput struct{}

// Status is the system-status controller.
type Status = Controller[StatusInput, types.SystemInfo]

// NewStatus returns an idle system-status controller. The health report
// and the collection list are fetched concurrently; either failing fails
// the dispatch.
func NewStatus(svc StatusFetcher, opts Options) *Status {
	return newController(definition[StatusInput, types.SystemInfo]{
		name:     "status",
		validate: func(StatusInput) error { return nil },
		run: func(ctx context.Context, _ StatusInput) (types.SystemInfo, error) {
			var (
				status      types.StatusResponse
				collections types.CollectionsResponse
			)
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				status, err = svc.Status(gctx)
				return err
			})
			g.Go(func() error {
				var err error
				collections, err = svc.Collections(gctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return types.SystemInfo{}, err
			}
			return types.SystemInfo{
				Status: types.SystemStatus{
					Status:  status.Status,
					Service: status.Service,
					Version: status.Version,
				},
				Collections: normalize.Collections(collections.Collections),
			}, nil
		},
		fallback: "Failed to load system information",
		success: func(info types.SystemInfo) string {
			return fmt.Sprintf("%s is %s", serviceName(info.Status), info.Status.Status)
		},
		describe: func(StatusInput) string { return "" },
		count:    func(info types.SystemInfo) int { return len(info.Collections) },
	}, opts)
}

func serviceName(s types.SystemStatus) string {
	if s.Service == "" {
		return "service"
	}
	return s.Service
}
