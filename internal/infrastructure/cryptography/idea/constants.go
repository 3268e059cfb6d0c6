package idea

const (
	// WordBits is the width of every value the round function touches.
	WordBits = 16

	// BlockBits is the block width in bits.
	BlockBits = 64

	// KeyBits is the key width in bits.
	KeyBits = 128

	// BlockSize is the block width in bytes.
	BlockSize = BlockBits / 8

	// KeySize is the key width in bytes.
	KeySize = KeyBits / 8

	// Rounds is the number of full rounds before the output transformation.
	Rounds = 8

	// SubkeysPerRound is the number of subkeys one full round consumes.
	SubkeysPerRound = 6

	// OutputSubkeys is the number of subkeys the output half-round consumes.
	OutputSubkeys = 4

	// ScheduleLen is the length of every subkey schedule.
	ScheduleLen = Rounds*SubkeysPerRound + OutputSubkeys
)

const (
	// addModulus is the modulus of word addition, 2^16.
	addModulus = 1 << WordBits

	// mulModulus is the modulus of word multiplication, 2^16+1.
	mulModulus = addModulus + 1

	wordsPerBlock = BlockBits / WordBits
	wordsPerKey   = KeyBits / WordBits

	// keyRotation is the left rotation applied to the 128-bit key between
	// extractions.
	keyRotation = 25

	// scheduleExtractions is the number of times eight words are taken from
	// the rotating key; 7*8 = 56 words, truncated to ScheduleLen.
	scheduleExtractions = 7

	// lastRoundWindow is the index of the final round's first subkey in the
	// encryption schedule, where decryption starts reading backwards.
	lastRoundWindow = ScheduleLen - SubkeysPerRound
)
