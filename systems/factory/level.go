package factory

import (
	"github.com/automoto/herokit/archetypes"
	"github.com/automoto/herokit/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateWall(w donburi.World, obj *resolv.Object) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)
	obj.Data = wall
	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	return wall
}

func CreatePlatform(w donburi.World, obj *resolv.Object) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	return platform
}
