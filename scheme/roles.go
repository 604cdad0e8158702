package scheme

// Role names a Material 3 color role. The string form is the token name.
type Role string

const (
	Primary                 Role = "primary"
	OnPrimary               Role = "onPrimary"
	PrimaryContainer        Role = "primaryContainer"
	OnPrimaryContainer      Role = "onPrimaryContainer"
	InversePrimary          Role = "inversePrimary"
	Secondary               Role = "secondary"
	OnSecondary             Role = "onSecondary"
	SecondaryContainer      Role = "secondaryContainer"
	OnSecondaryContainer    Role = "onSecondaryContainer"
	Tertiary                Role = "tertiary"
	OnTertiary              Role = "onTertiary"
	TertiaryContainer       Role = "tertiaryContainer"
	OnTertiaryContainer     Role = "onTertiaryContainer"
	Error                   Role = "error"
	OnError                 Role = "onError"
	ErrorContainer          Role = "errorContainer"
	OnErrorContainer        Role = "onErrorContainer"
	Background              Role = "background"
	OnBackground            Role = "onBackground"
	Surface                 Role = "surface"
	SurfaceDim              Role = "surfaceDim"
	SurfaceBright           Role = "surfaceBright"
	SurfaceContainerLowest  Role = "surfaceContainerLowest"
	SurfaceContainerLow     Role = "surfaceContainerLow"
	SurfaceContainer        Role = "surfaceContainer"
	SurfaceContainerHigh    Role = "surfaceContainerHigh"
	SurfaceContainerHighest Role = "surfaceContainerHighest"
	OnSurface               Role = "onSurface"
	SurfaceVariant          Role = "surfaceVariant"
	OnSurfaceVariant        Role = "onSurfaceVariant"
	InverseSurface          Role = "inverseSurface"
	InverseOnSurface        Role = "inverseOnSurface"
	SurfaceTint             Role = "surfaceTint"
	Outline                 Role = "outline"
	OutlineVariant          Role = "outlineVariant"
	Shadow                  Role = "shadow"
	Scrim                   Role = "scrim"
	PrimaryFixed            Role = "primaryFixed"
	PrimaryFixedDim         Role = "primaryFixedDim"
	OnPrimaryFixed          Role = "onPrimaryFixed"
	OnPrimaryFixedVariant   Role = "onPrimaryFixedVariant"
	SecondaryFixed          Role = "secondaryFixed"
	SecondaryFixedDim       Role = "secondaryFixedDim"
	OnSecondaryFixed        Role = "onSecondaryFixed"
	OnSecondaryFixedVariant Role = "onSecondaryFixedVariant"
	TertiaryFixed           Role = "tertiaryFixed"
	TertiaryFixedDim        Role = "tertiaryFixedDim"
	OnTertiaryFixed         Role = "onTertiaryFixed"
	OnTertiaryFixedVariant  Role = "onTertiaryFixedVariant"
)

// Roles is the token emission order for every generated variant.
// Downstream CSS output and live application follow this order exactly.
var Roles = []Role{
	Primary,
	OnPrimary,
	PrimaryContainer,
	OnPrimaryContainer,
	InversePrimary,
	Secondary,
	OnSecondary,
	SecondaryContainer,
	OnSecondaryContainer,
	Tertiary,
	OnTertiary,
	TertiaryContainer,
	OnTertiaryContainer,
	Error,
	OnError,
	ErrorContainer,
	OnErrorContainer,
	Background,
	OnBackground,
	Surface,
	SurfaceDim,
	SurfaceBright,
	SurfaceContainerLowest,
	SurfaceContainerLow,
	SurfaceContainer,
	SurfaceContainerHigh,
	SurfaceContainerHighest,
	OnSurface,
	SurfaceVariant,
	OnSurfaceVariant,
	InverseSurface,
	InverseOnSurface,
	SurfaceTint,
	Outline,
	OutlineVariant,
	Shadow,
	Scrim,
	PrimaryFixed,
	PrimaryFixedDim,
	OnPrimaryFixed,
	OnPrimaryFixedVariant,
	SecondaryFixed,
	SecondaryFixedDim,
	OnSecondaryFixed,
	OnSecondaryFixedVariant,
	TertiaryFixed,
	TertiaryFixedDim,
	OnTertiaryFixed,
	OnTertiaryFixedVariant,
}
