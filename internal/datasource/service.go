package datasource

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cwj5/ledgergraf/internal/ledger"
)

// QueryKind selects which figure of a register record feeds the series,
// or the point-in-time balance report.
type QueryKind string

const (
	KindAmount        QueryKind = "amount"
	KindCumulativeSum QueryKind = "cumulative-sum"
	KindBalance       QueryKind = "balance"
)

// kindSeparator joins account name and query kind in a target string.
const kindSeparator = " - "

// Mode selects which report backs /query when a target carries no
// explicit kind suffix.
type Mode string

const (
	ModeRegister Mode = "register"
	ModeBalance  Mode = "balance"
)

// Service translates dashboard protocol requests into ledger report
// invocations and back into datapoint series.
type Service struct {
	ledger      *ledger.Client
	mode        Mode
	suffixKinds bool
	log         *slog.Logger
}

// NewService creates the query translator. suffixKinds controls whether
// /search results carry a query-kind suffix per account.
func NewService(client *ledger.Client, mode Mode, suffixKinds bool, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ledger: client, mode: mode, suffixKinds: suffixKinds, log: logger}
}

// Search returns the universe of queryable target identifiers: every
// account and ancestor prefix, optionally crossed with the query kinds.
func (s *Service) Search(ctx context.Context) ([]string, error) {
	names, err := s.ledger.AccountNames(ctx)
	if err != nil {
		return nil, err
	}
	if !s.suffixKinds {
		return names, nil
	}

	kinds := []QueryKind{KindAmount, KindCumulativeSum}
	targets := make([]string, 0, len(names)*len(kinds))
	for _, name := range names {
		for _, kind := range kinds {
			targets = append(targets, name+kindSeparator+string(kind))
		}
	}
	return targets, nil
}

// Query resolves every requested target independently. A failing target
// degrades to a zero series; only an unparsable range fails the whole
// request.
func (s *Service) Query(ctx context.Context, req QueryRequest) ([]TimeSeries, error) {
	from, err := parseRangeTime(req.Range.From)
	if err != nil {
		return nil, fmt.Errorf("range start: %w", err)
	}
	to, err := parseRangeTime(req.Range.To)
	if err != nil {
		return nil, fmt.Errorf("range end: %w", err)
	}

	series := make([]TimeSeries, 0, len(req.Targets))
	for _, target := range req.Targets {
		series = append(series, s.queryTarget(ctx, target.Target, from, to))
	}
	return series, nil
}

func (s *Service) queryTarget(ctx context.Context, target string, from, to time.Time) TimeSeries {
	account, kind := s.splitTarget(target)

	points, err := s.datapoints(ctx, account, kind, from, to)
	if err != nil {
		s.log.Error("target query failed", "target", target, "error", err)
		points = nil
	}
	if len(points) == 0 {
		// Consumers expect at least one point per series.
		points = []Datapoint{{Value: 0, TimestampMs: dayMillis(to)}}
	}
	return TimeSeries{Target: account, Datapoints: points}
}

func (s *Service) datapoints(ctx context.Context, account string, kind QueryKind, from, to time.Time) ([]Datapoint, error) {
	begin, end := engineDate(from), engineDate(to)

	if kind == KindBalance {
		total, err := s.ledger.Balance(ctx, begin, end, account)
		if err != nil {
			return nil, err
		}
		return []Datapoint{{Value: total, TimestampMs: dayMillis(to)}}, nil
	}

	records, err := s.ledger.Register(ctx, begin, end, account)
	if err != nil {
		return nil, err
	}

	points := make([]Datapoint, 0, len(records))
	for _, r := range records {
		value := r.Amount
		if kind != KindAmount {
			value = r.Total
		}
		points = append(points, Datapoint{Value: value, TimestampMs: r.Date.UnixMilli()})
	}
	return points, nil
}

// splitTarget separates "<account> - <kind>". A bare account name falls
// back to the serving mode's implicit kind; an unrecognized suffix
// reads as cumulative-sum, matching the engine's historical dispatch.
func (s *Service) splitTarget(target string) (string, QueryKind) {
	if account, kind, ok := strings.Cut(target, kindSeparator); ok {
		if QueryKind(kind) == KindAmount || QueryKind(kind) == KindBalance {
			return account, QueryKind(kind)
		}
		return account, KindCumulativeSum
	}
	if s.mode == ModeBalance {
		return target, KindBalance
	}
	return target, KindAmount
}

// Annotations returns the fixed placeholder annotation centered on the
// request range, at full timestamp precision.
func (s *Service) Annotations(req AnnotationsRequest) ([]Annotation, error) {
	from, err := parseRangeTime(req.Range.From)
	if err != nil {
		return nil, fmt.Errorf("range start: %w", err)
	}
	to, err := parseRangeTime(req.Range.To)
	if err != nil {
		return nil, fmt.Errorf("range end: %w", err)
	}

	return []Annotation{{
		Annotation: "ledgergraf",
		Time:       (from.UnixMilli() + to.UnixMilli()) / 2,
		Title:      "Range midpoint",
		Tags:       []string{"ledger"},
		Text:       "Placeholder annotation",
	}}, nil
}
