package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/chassis/app"
	"github.com/dshills/chassis/bus"
	"github.com/dshills/chassis/options"
	"github.com/dshills/chassis/plugin"
	"github.com/dshills/chassis/scheduler"
)

// acceptedBlock is the payload broadcast for every block the chain
// accepts.
type acceptedBlock struct {
	Num uint64
	ID  string
}

// Endpoint keys shared between chain and its consumers.
var (
	acceptedBlockChannel = bus.ChannelKey[acceptedBlock]("chain.accepted-block")
	headBlockMethod      = bus.MethodKey[struct{}, uint64]("chain.head-block")
)

// chainPlugin is a toy block producer: it accepts a block on a timer and
// broadcasts it, and answers head-block queries synchronously.
type chainPlugin struct {
	app *app.App

	readonly bool
	dbsize   int64
	interval time.Duration

	head   uint64
	blocks *bus.Channel[acceptedBlock]
	method *bus.Method[struct{}, uint64]

	ticker *time.Ticker
	done   chan struct{}
}

func chainSpec(a *app.App) plugin.Spec {
	return plugin.Spec{
		Name: "chain",
		New:  func() plugin.Plugin { return &chainPlugin{app: a} },
	}
}

func (p *chainPlugin) DeclareOptions(set *options.Set) {
	sec := set.Section("chain", "Chain plugin")
	sec.Bool("readonly", false, "Open the database in read-only mode")
	sec.Int64("dbsize", 8192, "Size of the database in MiB", options.FileOnly)
	sec.Int("block-interval-ms", 500, "Milliseconds between produced blocks")
	sec.Bool("replay", false, "Clear chain state and replay all blocks", options.CLIOnly)
	sec.Bool("reset", false, "Delete all chain state", options.CLIOnly)
}

func (p *chainPlugin) OnInitialize(vals *options.Values) error {
	p.readonly = vals.Bool("chain.readonly")
	p.dbsize = vals.Int64("chain.dbsize")
	p.interval = time.Duration(vals.Int("chain.block-interval-ms")) * time.Millisecond

	if p.dbsize <= 0 {
		return fmt.Errorf("chain.dbsize must be positive, got %d", p.dbsize)
	}
	if p.interval <= 0 {
		return fmt.Errorf("chain.block-interval-ms must be positive")
	}

	log := p.app.Logger()
	if vals.Bool("chain.reset") {
		log.Info().Msg("chain: deleting all state")
		p.head = 0
	}
	if vals.Bool("chain.replay") {
		log.Info().Msg("chain: replaying from genesis")
		p.head = 0
	}

	blocks, err := bus.GetChannel(p.app.Bus(), acceptedBlockChannel)
	if err != nil {
		return err
	}
	p.blocks = blocks

	method, err := bus.GetMethod(p.app.Bus(), headBlockMethod)
	if err != nil {
		return err
	}
	if err := method.Bind(func(struct{}) (uint64, error) {
		return p.head, nil
	}); err != nil {
		return err
	}
	p.method = method

	log.Info().
		Bool("readonly", p.readonly).
		Int64("dbsize_mib", p.dbsize).
		Msg("chain: database open")
	return nil
}

func (p *chainPlugin) OnStartup() error {
	if p.readonly {
		log := p.app.Logger()
		log.Info().Msg("chain: read-only, not producing")
		return nil
	}

	p.ticker = time.NewTicker(p.interval)
	p.done = make(chan struct{})
	go func() {
		for {
			select {
			case <-p.done:
				return
			case <-p.ticker.C:
				p.app.Post(scheduler.PriorityMedium, p.produceBlock)
			}
		}
	}()
	return nil
}

func (p *chainPlugin) OnShutdown() error {
	if p.ticker != nil {
		p.ticker.Stop()
		close(p.done)
		p.ticker = nil
	}
	if p.method != nil {
		p.method.Unbind()
	}
	log := p.app.Logger()
	log.Info().Uint64("head", p.head).Msg("chain: database closed")
	return nil
}

// OnReload re-reads tunables that are safe to change while running.
func (p *chainPlugin) OnReload() error {
	vals := p.app.Values()
	interval := time.Duration(vals.Int("chain.block-interval-ms")) * time.Millisecond
	if interval > 0 && interval != p.interval && p.ticker != nil {
		p.interval = interval
		p.ticker.Reset(interval)
		log := p.app.Logger()
		log.Info().Dur("interval", interval).Msg("chain: block interval changed")
	}
	return nil
}

// produceBlock runs on the exec loop.
func (p *chainPlugin) produceBlock() {
	if p.app.IsQuiting() {
		return
	}
	p.head++
	p.blocks.Publish(scheduler.PriorityMedium, acceptedBlock{
		Num: p.head,
		ID:  uuid.NewString(),
	})
}
