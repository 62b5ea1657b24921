package ship

import (
	"strconv"

	"shipgen/internal/core"
)

// Parameters reports the generator's tunables under the keys FromMap reads.
func (g *Generator) Parameters() core.ParameterSnapshot {
	cfg := g.cfg
	holes := "off"
	if cfg.Holes.Enabled() {
		holes = cfg.Holes.String()
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Ship",
			Params: []core.Parameter{
				intParam("w", "Width", cfg.Width),
				intParam("h", "Height", cfg.Height),
				int64Param("seed", "Seed", g.seed),
			},
		},
		{
			Name:    "Hull",
			Summary: "Holes cut from the solid block before hollowing.",
			Params: []core.Parameter{
				stringParam("cutouts", "Cutout bands", formatBands(cfg.Cutouts), "min:max:smin:smax per band"),
				stringParam("holes", "Interior holes", holes, "min:max:smin:smax:threshold"),
				intParam("dead_end_passes", "Dead end passes", cfg.DeadEndPasses),
			},
		},
		{
			Name: "Rooms",
			Params: []core.Parameter{
				intParam("room_padding_x", "Column padding", cfg.RoomPaddingX),
				intParam("room_padding_y", "Row padding", cfg.RoomPaddingY),
				floatParam("window_chance", "Window chance", cfg.WindowChance),
			},
		},
		{
			Name: "Spawn",
			Params: []core.Parameter{
				intParam("spawn_x", "Player X", cfg.PlayerSpawn.X),
				intParam("spawn_y", "Player Y", cfg.PlayerSpawn.Y),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value, desc string) core.Parameter {
	return core.Parameter{
		Key:         key,
		Label:       label,
		Type:        core.ParamTypeString,
		Value:       value,
		Description: desc,
	}
}
