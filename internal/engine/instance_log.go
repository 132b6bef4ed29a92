package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/maximpopov11/pokeworld/pkg/logger"
)

// AddLog appends text to the status line of the next frame and writes it to
// the game log.
func (i *Instance) AddLog(text, logType string) {
	if i.message == "" {
		i.message = text
	} else {
		i.message += " " + text
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "game_log",
		"log_type":  logType,
		"tick":      i.tick,
		"tile_x":    i.tile.Coord.X,
		"tile_y":    i.tile.Coord.Y,
	}).Info(text)
}
