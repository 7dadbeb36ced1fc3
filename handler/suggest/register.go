package suggest

import (
	"github.com/flatywop/predlojkabot/handler"
)

// RegisterHandlers wires the suggestion-box commands and components into the
// interaction router.
func RegisterHandlers() {
	handler.AddCommandHandler("init", InitHandler)
	handler.AddCommandHandler("addmod", AddModeratorHandler)
	handler.AddCommandHandler("removemod", RemoveModeratorHandler)
	handler.AddCommandHandler("setchannel", SetChannelHandler)
	handler.AddCommandHandler("mods", ListModeratorsHandler)

	handler.AddComponentHandler("decision", DecisionHandler)
}
