package discord

import "time"

// Identity and option defaults
const (
	IdentityPrefix = "discord:"

	DefaultWorkDifficulty = 2
	MaxDifficulty         = 40

	commandTimeout = 2 * time.Minute
	pingTimeout    = 2 * time.Second
)

// Embed colors
const (
	ColorPlant   = 0x2ecc71
	ColorWork    = 0x3498db
	ColorHarvest = 0xf1c40f
	ColorCycle   = 0x9b59b6
	ColorStatus  = 0x95a5a6
	ColorWarn    = 0xe67e22
)

// FooterKaleFarm is the footer on every embed
const FooterKaleFarm = "KaleFarm"

// DefaultStatus is the presence shown once the gateway is ready
const DefaultStatus = "🥬 /farm"

// Friendly message constants for Discord responses
const (
	MsgNotPlanted     = "🌱 **Nothing Planted**\nUse `/plant` to start a session first."
	MsgNoSolution     = "⛏️ **No Solution Found**\nTry a lower difficulty."
	MsgDifficultyHigh = "📈 **Difficulty Too High**\nNo digest can reach that many zeros."
	MsgAlreadyBusy    = "⏳ **Busy**\nThat farm is already being worked."
	MsgServiceDown    = "🔌 **Farm Unavailable**\nThe farm service is restarting, try again shortly."
	MsgTimedOut       = "⌛ **Timed Out**\nThe farm took too long to answer."
	MsgInvalidInput   = "⚠️ **Invalid Input**\nCheck the command options."

	MsgGenericError = "❌ Something went wrong."
)

// digestPreview is how many hex characters of a digest embeds show
const digestPreview = 12
