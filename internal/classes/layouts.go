package classes

// registry holds the classes whose serialised sizes are known, with whatever
// field layouts have been reverse engineered so far. Offsets are relative to
// the class tag at the start of the object. Tags were recorded from shipped
// .bin files rather than computed (see names.go).
var registry = []Class{
	{
		Name: "gf::DB",
		Hash: 0x9B3DDBED,
		Size: 0x24,
		Layout: []Field{
			{Name: "filename", Offset: 0x08, Kind: Pointer},
			{Name: "entries", Offset: 0x14, Kind: Pointer},
			{Name: "entry_count", Offset: 0x18, Kind: Int, Width: 4},
		},
	},
	{
		Name: "gf::LocalizedString",
		Hash: 0xBFC7788D,
		Size: 0x0C,
		Layout: []Field{
			{Name: "flags", Offset: 0x04, Kind: Int, Width: 4},
			{Name: "text", Offset: 0x08, Kind: Pointer},
		},
	},
	{
		Name: "Game::EffectStringReference",
		Hash: 0xC43D420D,
		Size: 0x0C,
		Layout: []Field{
			{Name: "text", Offset: 0x04, Kind: Pointer},
		},
	},
	{
		Name: "Game::AttackMoveType",
		Hash: 0xEBF07BB5,
		Size: 0x260,
		Layout: []Field{
			{Name: "endlag", Offset: 0x04, Kind: Float},
			{Name: "unknown_008", Offset: 0x08, Kind: Float},
			{Name: "unknown_00c", Offset: 0x0C, Kind: Float},
			{Name: "unknown_010", Offset: 0x10, Kind: Float},
			{Name: "fall_speed", Offset: 0x14, Kind: Float},
			{Name: "unknown_018", Offset: 0x18, Kind: Float},
			{Name: "hitboxes", Offset: 0x20, Kind: Pointer},
			{Name: "hitbox_count", Offset: 0x24, Kind: Int, Width: 4},
			{Name: "name", Offset: 0x28, Kind: Pointer},
			{Name: "hits_otg", Offset: 0x33, Kind: Bool},
			{Name: "knocks_down", Offset: 0x34, Kind: Bool},
			{Name: "disabled", Offset: 0x35, Kind: Bool},
			{Name: "intangible", Offset: 0x3A, Kind: Bool},
			{Name: "pushes_back", Offset: 0x3B, Kind: Bool},
			{Name: "aim_range", Offset: 0x74, Kind: Float},
			{Name: "damage1", Offset: 0x84, Kind: Float},
			{Name: "damage2", Offset: 0x88, Kind: Float},
			{Name: "damage3", Offset: 0x8C, Kind: Float},
			{Name: "charge_effect", Offset: 0x94, Kind: Float},
			{Name: "charge", Offset: 0x98, Kind: Float},
			{Name: "projectile", Offset: 0x9C, Kind: Pointer},
			{Name: "stun", Offset: 0xA4, Kind: Float},
			{Name: "knockback", Offset: 0xAC, Kind: Float},
			{Name: "unknown_0b0", Offset: 0xB0, Kind: Float},
			{Name: "unknown_0b4", Offset: 0xB4, Kind: Float},
			{Name: "unknown_0d8", Offset: 0xD8, Kind: Float},
			{Name: "unknown_0dc", Offset: 0xDC, Kind: Float},
			{Name: "unknown_0e0", Offset: 0xE0, Kind: Float},
			{Name: "unknown_0e4", Offset: 0xE4, Kind: Float},
			{Name: "unknown_0e8", Offset: 0xE8, Kind: Float},
			{Name: "unknown_0ec", Offset: 0xEC, Kind: Float},
		},
	},
	{
		Name: "Game::AttackMoveRegion",
		Hash: 0xF2CFE08D,
		Size: 0x40,
		Layout: []Field{
			{Name: "delay", Offset: 0x04, Kind: Float},
			{Name: "width", Offset: 0x30, Kind: Float},
			{Name: "radius", Offset: 0x38, Kind: Float},
		},
	},
	{
		Name: "Game::ProjectileType",
		Hash: 0x8811292E,
		Size: 0x74,
		Layout: []Field{
			{Name: "x_vector", Offset: 0x08, Kind: Float},
			{Name: "angle", Offset: 0x14, Kind: Float},
			{Name: "arc", Offset: 0x18, Kind: Float},
			{Name: "homing1", Offset: 0x44, Kind: Float},
			{Name: "homing2", Offset: 0x48, Kind: Float},
			{Name: "homing3", Offset: 0x4C, Kind: Float},
		},
	},
	{
		Name: "Game::GameWorld",
		Hash: 0xB974E53B,
		Size: 0xB430,
		Layout: []Field{
			{Name: "playable", Offset: 0x14, Kind: Int, Width: 4},
			{Name: "unknown_float_1_x", Offset: 0x30, Kind: Float},
			{Name: "unknown_float_1_y", Offset: 0x34, Kind: Float},
			{Name: "unknown_float_1_z", Offset: 0x38, Kind: Float},
			{Name: "unknown_float_2_x", Offset: 0x40, Kind: Float},
			{Name: "unknown_float_2_y", Offset: 0x44, Kind: Float},
			{Name: "unknown_float_2_z", Offset: 0x48, Kind: Float},
		},
	},
	{
		Name: "Game::Spitter",
		Hash: 0x90D8FCD6,
		Size: 0xE0,
		Layout: []Field{
			{Name: "keyframes", Offset: 0x20, Kind: Pointer},
			{Name: "keyframe_count", Offset: 0x24, Kind: Int, Width: 4},
		},
	},
	{
		Name: "Game::EventSequence",
		Hash: 0xD24634FE,
		Size: 0x30,
		Layout: []Field{
			{Name: "events", Offset: 0x04, Kind: Pointer},
			{Name: "event_count", Offset: 0x08, Kind: Int, Width: 4},
		},
	},
	{Name: "Game::SpitterKeyframe", Hash: 0x84AD7E70, Size: 0x100},
	{Name: "Game::DynamicThrowable", Hash: 0xC8E0C03F, Size: 0x150},
	{Name: "Game::ObjectInitializer", Hash: 0xDBFB4A35, Size: 0xA8},
	{Name: "Game::PhysicsFighting", Hash: 0xADDDF1EC, Size: 0xD50},
	{Name: "Game::WeaponType", Hash: 0xFE392AB6, Size: 0x120},
	{Name: "Game::PowerupType", Hash: 0xBE7B44BA, Size: 0xE4},
	{Name: "Game::PotionType", Hash: 0xF05C7BD3, Size: 0x100},
	{Name: "Game::ItemSpawner", Hash: 0xCD47AA2B, Size: 0x688},
	{Name: "Game::LoadingScreen", Hash: 0xF32EBBA9, Size: 0x8C},
	{Name: "Game::Entity", Hash: 0xDDEC024E, Size: 0x280},
	{Name: "Game::BehaviorFightingControlShrek", Hash: 0xD306D805, Size: 0xF0},
	{Name: "anim::LookAtData", Hash: 0xD9BB3F0F, Size: 0x24},
	{Name: "Game::RenderSpawn", Hash: 0xA6FC81A0, Size: 0x290},
}
