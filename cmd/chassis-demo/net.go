package main

import (
	"github.com/dshills/chassis/app"
	"github.com/dshills/chassis/bus"
	"github.com/dshills/chassis/options"
	"github.com/dshills/chassis/plugin"
)

// netPlugin pretends to gossip accepted blocks to peers. It demonstrates
// the consuming side of the endpoints chain provides.
type netPlugin struct {
	plugin.Base

	app *app.App

	listen  string
	remotes []string

	sub *bus.Subscription
}

func netSpec(a *app.App) plugin.Spec {
	return plugin.Spec{
		Name:     "net",
		New:      func() plugin.Plugin { return &netPlugin{app: a} },
		Requires: []plugin.Spec{chainSpec(a)},
	}
}

func (p *netPlugin) DeclareOptions(set *options.Set) {
	sec := set.Section("net", "Net plugin")
	sec.String("listen-endpoint", "127.0.0.1:9876", "Local host:port to listen for peers on")
	sec.StringSlice("remote-endpoint", nil, "Peer endpoint(s) to connect to, may be specified multiple times")
	sec.String("public-endpoint", "", "Endpoint advertised to peers, defaults to listen-endpoint")
}

func (p *netPlugin) OnInitialize(vals *options.Values) error {
	p.listen = vals.String("net.listen-endpoint")
	p.remotes = vals.StringSlice("net.remote-endpoint")

	public := vals.String("net.public-endpoint")
	if public == "" {
		public = p.listen
	}
	log := p.app.Logger()
	log.Info().
		Str("listen", p.listen).
		Str("public", public).
		Strs("remotes", p.remotes).
		Msg("net: configured")
	return nil
}

func (p *netPlugin) OnStartup() error {
	blocks, err := bus.GetChannel(p.app.Bus(), acceptedBlockChannel)
	if err != nil {
		return err
	}
	log := p.app.Logger()
	p.sub = blocks.Subscribe(func(b acceptedBlock) {
		log.Info().Uint64("num", b.Num).Str("id", b.ID).Msg("net: broadcasting block")
	})

	head, err := bus.GetMethod(p.app.Bus(), headBlockMethod)
	if err != nil {
		return err
	}
	num, err := head.Call(struct{}{})
	if err != nil {
		return err
	}
	log.Info().Uint64("head", num).Str("listen", p.listen).Msg("net: listening")
	return nil
}

func (p *netPlugin) OnShutdown() error {
	if p.sub != nil {
		p.sub.Close()
		p.sub = nil
	}
	log := p.app.Logger()
	log.Info().Msg("net: connections closed")
	return nil
}
