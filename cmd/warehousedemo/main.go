// Command warehousedemo loads a warehouse configuration, builds the
// core, and runs a scripted walkthrough against it: a bootstrap shape
// modeled on the teacher's own server entrypoint (load config,
// construct the core, log milestones, run a sequence, exit cleanly).
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/gravitas-015/warehouse/internal/alloc"
	"github.com/gravitas-015/warehouse/internal/config"
	"github.com/gravitas-015/warehouse/internal/filter"
	"github.com/gravitas-015/warehouse/internal/item"
	"github.com/gravitas-015/warehouse/internal/location"
	"github.com/gravitas-015/warehouse/internal/logging"
	"github.com/gravitas-015/warehouse/internal/warehouse"
)

func main() {
	configPath := flag.String("config", "warehouse.yaml", "path to warehouse configuration")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warehousedemo: %v\n", err)
		os.Exit(1)
	}

	logging.Init(logging.Config{
		Level:      logging.Level(cfg.Logging.Level),
		JSONOutput: cfg.Logging.JSONOutput,
	})
	log := logging.WithComponent("warehousedemo")

	dims := location.Dims{Rows: cfg.Warehouse.Rows, Shelves: cfg.Warehouse.Shelves, Zones: cfg.Warehouse.Zones}

	allocator, err := buildAllocator(cfg.Allocator, dims)
	if err != nil {
		log.Error().Err(err).Msg("failed to build allocator")
		os.Exit(1)
	}

	chain, err := buildFilterChain(cfg.Filters)
	if err != nil {
		log.Error().Err(err).Msg("failed to build filter chain")
		os.Exit(1)
	}

	mgr := warehouse.New(dims, allocator, chain)
	mgr.SetObserver(func(ev warehouse.Event) {
		log.Info().Str("event", ev.Kind.String()).Str("location", ev.Location.String()).Msg("warehouse event")
	})

	log.Info().
		Int("rows", dims.Rows).Int("shelves", dims.Shelves).Int("zones", dims.Zones).
		Str("allocator", allocator.Name()).
		Msg("warehouse ready")

	runWalkthrough(mgr, log)
}

// buildAllocator maps the configured strategy name onto a concrete
// alloc.Allocator.
func buildAllocator(cfg config.AllocatorConfig, dims location.Dims) (alloc.Allocator, error) {
	switch cfg.Strategy {
	case "", "proximity":
		return alloc.NewProximity(), nil
	case "round_robin":
		return alloc.NewRoundRobin(dims), nil
	default:
		return nil, fmt.Errorf("warehousedemo: unknown allocator strategy %q", cfg.Strategy)
	}
}

// buildFilterChain maps each configured filter entry onto a concrete
// filter.Filter, in order.
func buildFilterChain(entries []config.FilterConfig) (*filter.Chain, error) {
	chain := filter.NewChain()
	for _, entry := range entries {
		f, err := buildFilter(entry)
		if err != nil {
			return nil, err
		}
		chain.Append(f)
	}
	return chain, nil
}

func buildFilter(cfg config.FilterConfig) (filter.Filter, error) {
	switch cfg.Type {
	case "max_oversized":
		max, err := intParam(cfg.Params, "max")
		if err != nil {
			return nil, err
		}
		return filter.MaxOversizedFilter{Max: max}, nil

	case "max_quantity_per_id":
		id, err := intParam(cfg.Params, "id")
		if err != nil {
			return nil, err
		}
		max, err := intParam(cfg.Params, "max")
		if err != nil {
			return nil, err
		}
		return filter.MaxQuantityPerIDFilter{ID: item.ID(id), Max: max}, nil

	case "forbidden_name":
		names, err := stringsParam(cfg.Params, "names")
		if err != nil {
			return nil, err
		}
		return filter.NewForbiddenNameFilter(names...), nil

	case "fragile_policy":
		minRow, err := intParam(cfg.Params, "min_allowed_max_row")
		if err != nil {
			return nil, err
		}
		f := filter.FragilePolicyFilter{MinAllowedMaxRow: minRow}
		if raw, ok := cfg.Params["reject_past_day"]; ok {
			day, err := intParam(map[string]any{"reject_past_day": raw}, "reject_past_day")
			if err != nil {
				return nil, err
			}
			f.RejectPastDay = &day
		}
		return f, nil

	default:
		return nil, fmt.Errorf("warehousedemo: unknown filter type %q", cfg.Type)
	}
}

func intParam(params map[string]any, key string) (int, error) {
	raw, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("warehousedemo: filter param %q missing", key)
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("warehousedemo: filter param %q has unexpected type %T", key, raw)
	}
}

func stringsParam(params map[string]any, key string) ([]string, error) {
	raw, ok := params[key]
	if !ok {
		return nil, fmt.Errorf("warehousedemo: filter param %q missing", key)
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("warehousedemo: filter param %q has unexpected type %T", key, raw)
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("warehousedemo: filter param %q contains a non-string entry", key)
		}
		out = append(out, s)
	}
	return out, nil
}

// runWalkthrough exercises the core end to end: a normal placement, a
// fragile item, and an oversized item, then lists and queries the
// result, surfacing each outcome through the logger.
func runWalkthrough(mgr *warehouse.Manager, log zerolog.Logger) {
	place := func(it item.Item) {
		loc, err := mgr.Add(it)
		var rejected *warehouse.RejectedError
		switch {
		case err == nil:
			log.Info().Str("location", loc.String()).Int64("item_id", int64(it.ID)).Msg("placed")
		case errors.As(err, &rejected):
			log.Info().Str("filter", rejected.Filter).Str("reason", rejected.Reason).Msg("rejected")
		case errors.Is(err, warehouse.ErrNoSpace):
			log.Info().Msg("no space available")
		default:
			log.Info().Err(err).Msg("add failed")
		}
	}

	bolt, err := item.New(1, "bolt", 50, item.NewNormal())
	if err != nil {
		log.Error().Err(err).Msg("bad item")
		return
	}
	place(bolt)

	milk, err := item.New(2, "milk", 4, item.NewFragile(12, 0))
	if err != nil {
		log.Error().Err(err).Msg("bad item")
		return
	}
	place(milk)

	crate, err := item.New(3, "pallet", 1, item.NewOversized(3))
	if err != nil {
		log.Error().Err(err).Msg("bad item")
		return
	}
	place(crate)

	for _, entry := range mgr.ListSortedByName() {
		log.Info().Str("name", entry.Name).Int64("item_id", int64(entry.ID)).Str("location", entry.Location.String()).Msg("stored")
	}

	log.Info().Int("expiring_by_12", mgr.CountExpiringBy(12)).Msg("expiry query")
}
