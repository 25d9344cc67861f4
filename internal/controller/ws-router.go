package controller

import (
	"github.com/twitchembed/server/pkg/wsrouter"
)

func (c controller) getWSRouter() *wsrouter.WSRouter {
	mux := wsrouter.New()

	mux.Use(c.wsRequestIdWSMw(), c.loggerWSMw())

	wsrouter.Handle(mux, "ALIVE", c.handleAlive)

	// readiness
	wsrouter.Handle(mux, "READY", c.handleReady)

	// playback
	wsrouter.Handle(mux, "PLAY", c.handlePlay)
	wsrouter.Handle(mux, "PAUSE", c.handlePause)
	wsrouter.Handle(mux, "TOGGLE", c.handleToggleState)
	wsrouter.Handle(mux, "SET_VOLUME", c.handleSetVolume)

	// content switching
	wsrouter.Handle(mux, "SET_VIDEO", c.handleSetVideo)
	wsrouter.Handle(mux, "SET_CHANNEL", c.handleSetChannel)
	wsrouter.Handle(mux, "SET_COLLECTION", c.handleSetCollection)

	return mux
}
