package sii

import "errors"

var (
	errSpeechLength    = errors.New("sii: equivalent speech spectrum level must have 18 values")
	errNoiseLength     = errors.New("sii: noise spectrum level must have 18 values")
	errThresholdLength = errors.New("sii: hearing threshold level must have 18 values")
	errGainLength      = errors.New("sii: insertion gain must have 18 values")
	errCombinedLength  = errors.New("sii: combined speech and noise spectrum level must have 18 values")
	errTransferShape   = errors.New("sii: modulation transfer matrix must be 18x9")
	errChannels        = errors.New("sii: channels must be 1 (monaural) or 2 (binaural)")
	errNoSpeechSource  = errors.New("sii: speech source must be specified")
	errDistance        = errors.New("sii: source distance must be positive")
)
