package api

import (
	"fmt"
	"strings"
)

type (
	UnitTag    uint64
	UnitTypeID uint32
)

// Alliance of a unit relative to the observing player.
type Alliance int32

const (
	Alliance_Self    Alliance = 1
	Alliance_Ally    Alliance = 2
	Alliance_Neutral Alliance = 3
	Alliance_Enemy   Alliance = 4
)

func (a Alliance) String() string {
	switch a {
	case Alliance_Self:
		return "Self"
	case Alliance_Ally:
		return "Ally"
	case Alliance_Neutral:
		return "Neutral"
	case Alliance_Enemy:
		return "Enemy"
	}
	return fmt.Sprintf("Alliance(%d)", int32(a))
}

// Unit type ids used by the map analysis.
const (
	UnitType_CommandCenter          UnitTypeID = 18
	UnitType_Nexus                  UnitTypeID = 59
	UnitType_Assimilator            UnitTypeID = 61
	UnitType_Hatchery               UnitTypeID = 86
	UnitType_Extractor              UnitTypeID = 88
	UnitType_Lair                   UnitTypeID = 100
	UnitType_Hive                   UnitTypeID = 101
	UnitType_PlanetaryFortress      UnitTypeID = 130
	UnitType_OrbitalCommand         UnitTypeID = 132
	UnitType_Refinery               UnitTypeID = 20
	UnitType_RichMineralField       UnitTypeID = 146
	UnitType_RichMineralField750    UnitTypeID = 147
	UnitType_MineralField           UnitTypeID = 341
	UnitType_VespeneGeyser          UnitTypeID = 342
	UnitType_SpacePlatformGeyser    UnitTypeID = 343
	UnitType_RichVespeneGeyser      UnitTypeID = 344
	UnitType_MineralField750        UnitTypeID = 483
	UnitType_ProtossVespeneGeyser   UnitTypeID = 608
	UnitType_LabMineralField        UnitTypeID = 665
	UnitType_LabMineralField750     UnitTypeID = 666
	UnitType_PurifierRichMineral    UnitTypeID = 796
	UnitType_PurifierRichMineral750 UnitTypeID = 797
	UnitType_PurifierVespeneGeyser  UnitTypeID = 880
	UnitType_ShakurasVespeneGeyser  UnitTypeID = 881
	UnitType_PurifierMineralField   UnitTypeID = 884
	UnitType_PurifierMineral750     UnitTypeID = 885
	UnitType_BattleStationMineral   UnitTypeID = 886
	UnitType_BattleStationMineral75 UnitTypeID = 887
	UnitType_MineralField450        UnitTypeID = 1996
)

// Unit is the subset of a raw observation unit the map analysis needs.
type Unit struct {
	Tag             UnitTag    `protobuf:"varint,1,opt,name=tag,proto3"`
	UnitType        UnitTypeID `protobuf:"varint,2,opt,name=unit_type,json=unitType,proto3"`
	Name            string     `protobuf:"bytes,3,opt,name=name,proto3"`
	Alliance        Alliance   `protobuf:"varint,4,opt,name=alliance,proto3"`
	Pos             *Point     `protobuf:"bytes,5,opt,name=pos,proto3"`
	Radius          float32    `protobuf:"fixed32,6,opt,name=radius,proto3"`
	BuildProgress   float32    `protobuf:"fixed32,7,opt,name=build_progress,json=buildProgress,proto3"`
	MineralContents int32      `protobuf:"varint,8,opt,name=mineral_contents,json=mineralContents,proto3"`
	VespeneContents int32      `protobuf:"varint,9,opt,name=vespene_contents,json=vespeneContents,proto3"`
	IsStructure     bool       `protobuf:"varint,10,opt,name=is_structure,json=isStructure,proto3"`
}

func (u *Unit) Reset()      { *u = Unit{} }
func (*Unit) ProtoMessage() {}

func (u *Unit) String() string {
	if u == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v#%v@%v", u.Name, u.Tag, u.Pos2D())
}

// Pos2D returns the unit position projected onto the map.
func (u *Unit) Pos2D() Point2D {
	if u == nil || u.Pos == nil {
		return Point2D{}
	}
	return u.Pos.ToPoint2D()
}

func (u *Unit) IsMineral() bool {
	switch u.UnitType {
	case UnitType_MineralField, UnitType_MineralField750, UnitType_MineralField450,
		UnitType_RichMineralField, UnitType_RichMineralField750,
		UnitType_LabMineralField, UnitType_LabMineralField750,
		UnitType_PurifierMineralField, UnitType_PurifierMineral750,
		UnitType_PurifierRichMineral, UnitType_PurifierRichMineral750,
		UnitType_BattleStationMineral, UnitType_BattleStationMineral75:
		return true
	}
	return false
}

func (u *Unit) IsGeyser() bool {
	switch u.UnitType {
	case UnitType_VespeneGeyser, UnitType_SpacePlatformGeyser, UnitType_RichVespeneGeyser,
		UnitType_ProtossVespeneGeyser, UnitType_PurifierVespeneGeyser, UnitType_ShakurasVespeneGeyser:
		return true
	}
	return false
}

func (u *Unit) IsResource() bool {
	return u.IsMineral() || u.IsGeyser()
}

// IsSmallMineral reports the half-value "750" patches.
func (u *Unit) IsSmallMineral() bool {
	return u.IsMineral() && strings.HasSuffix(u.Name, "750")
}

// IsReducedMineral reports the "450" patches that do not belong to a base.
func (u *Unit) IsReducedMineral() bool {
	return u.UnitType == UnitType_MineralField450 || (u.IsMineral() && strings.HasSuffix(u.Name, "450"))
}

func (u *Unit) IsTownHall() bool {
	switch u.UnitType {
	case UnitType_CommandCenter, UnitType_OrbitalCommand, UnitType_PlanetaryFortress,
		UnitType_Nexus, UnitType_Hatchery, UnitType_Lair, UnitType_Hive:
		return true
	}
	return false
}

func (u *Unit) IsGasBuilding() bool {
	switch u.UnitType {
	case UnitType_Refinery, UnitType_Assimilator, UnitType_Extractor:
		return true
	}
	return false
}
