package record

import "fmt"

// ----------------------------------------------------------------------
// LFOShape
// ----------------------------------------------------------------------

// LFOShape は LFO の波形です。
type LFOShape uint8

const (
	ShapeTriangle        LFOShape = 0
	ShapeSine            LFOShape = 1
	ShapeSawtooth        LFOShape = 2
	ShapeSquare          LFOShape = 3
	ShapePulse33         LFOShape = 4
	ShapePulse25         LFOShape = 5
	ShapePulse16         LFOShape = 6
	ShapePulse12         LFOShape = 7
	ShapeOctaves         LFOShape = 8
	ShapeFifthPlusOctave LFOShape = 9
	ShapeSus4Trip        LFOShape = 10
	ShapeNeener          LFOShape = 11
	ShapeSine1_2         LFOShape = 12
	ShapeSine1_3_5       LFOShape = 13
	ShapeSineNoise       LFOShape = 14
	ShapeHemiQuaver      LFOShape = 15
	ShapeRandom          LFOShape = 255
)

var lfoShapeNames = map[LFOShape]string{
	ShapeTriangle:        "TRIANGLE",
	ShapeSine:            "SINE",
	ShapeSawtooth:        "SAWTOOTH",
	ShapeSquare:          "SQUARE",
	ShapePulse33:         "PULSE_33",
	ShapePulse25:         "PULSE_25",
	ShapePulse16:         "PULSE_16",
	ShapePulse12:         "PULSE_12",
	ShapeOctaves:         "OCTAVES",
	ShapeFifthPlusOctave: "FIFTH_PLUS_OCTAVE",
	ShapeSus4Trip:        "SUS4_TRIP",
	ShapeNeener:          "NEENER",
	ShapeSine1_2:         "SINE_1_2",
	ShapeSine1_3_5:       "SINE_1_3_5",
	ShapeSineNoise:       "SINE_NOISE",
	ShapeHemiQuaver:      "HEMI_QUAVER",
	ShapeRandom:          "RANDOM",
}

func (v LFOShape) String() string {
	if s, ok := lfoShapeNames[v]; ok {
		return s
	}
	return fmt.Sprintf("LFOShape(%d)", uint8(v))
}

// ----------------------------------------------------------------------
// CordSource
// ----------------------------------------------------------------------

// CordSource はモジュレーションコードの入力元です。
type CordSource uint8

const (
	SrcOff                     CordSource = 0
	SrcXfadeRandom             CordSource = 4
	SrcKeyPolarityPos          CordSource = 8
	SrcKeyPolarityCenter       CordSource = 9
	SrcVelPolarityPos          CordSource = 10
	SrcVelPolarityCenter       CordSource = 11
	SrcVelPolarityLess         CordSource = 12
	SrcReleaseVel              CordSource = 13
	SrcGate                    CordSource = 14
	SrcPitchWheel              CordSource = 16
	SrcModWheel                CordSource = 17
	SrcPressure                CordSource = 18
	SrcPedal                   CordSource = 19
	SrcMIDIA                   CordSource = 20
	SrcMIDIB                   CordSource = 21
	SrcFootswitch1             CordSource = 22
	SrcFootswitch2             CordSource = 23
	SrcFootswitch1Ff           CordSource = 24
	SrcFootswitch2Ff           CordSource = 25
	SrcMIDIVolume              CordSource = 26
	SrcMIDIPan                 CordSource = 27
	SrcExpression              CordSource = 28
	SrcMIDIC                   CordSource = 32
	SrcMIDID                   CordSource = 33
	SrcMIDIE                   CordSource = 34
	SrcMIDIF                   CordSource = 35
	SrcMIDIG                   CordSource = 36
	SrcMIDIH                   CordSource = 37
	SrcTSwitch                 CordSource = 38
	SrcTSwitchFf               CordSource = 39
	SrcMIDII                   CordSource = 40
	SrcMIDIJ                   CordSource = 41
	SrcMIDIK                   CordSource = 42
	SrcMIDIL                   CordSource = 43
	SrcMIDIM                   CordSource = 44
	SrcMIDIN                   CordSource = 45
	SrcMIDIO                   CordSource = 46
	SrcMIDIP                   CordSource = 47
	SrcKeyGlide                CordSource = 48
	SrcKeyCcWin                CordSource = 49
	SrcAmpEnvPolarityPos       CordSource = 72
	SrcAmpEnvPolarityCenter    CordSource = 73
	SrcAmpEnvPolarityLess      CordSource = 74
	SrcFilterEnvPolarityPos    CordSource = 80
	SrcFilterEnvPolarityCenter CordSource = 81
	SrcFilterEnvPolarityLess   CordSource = 82
	SrcAuxEnvPolarityPos       CordSource = 88
	SrcAuxEnvPolarityCenter    CordSource = 89
	SrcAuxEnvPolarityLess      CordSource = 90
	SrcLFO1PolarityCenter      CordSource = 96
	SrcLFO1PolarityPos         CordSource = 97
	SrcWhiteNoise              CordSource = 98
	SrcPinkNoise               CordSource = 99
	SrcKeyRandom1              CordSource = 100
	SrcKeyRandom2              CordSource = 101
	SrcLFO2PolarityCenter      CordSource = 104
	SrcLFO2PolarityPos         CordSource = 105
	SrcLag1In                  CordSource = 106
	SrcLag1                    CordSource = 107
	SrcLag2In                  CordSource = 108
	SrcLag2                    CordSource = 109
	SrcChannelLag1             CordSource = 128
	SrcChannelRamp             CordSource = 129
	SrcChannelLag2             CordSource = 130
	SrcPolyKeyTimer            CordSource = 131
	SrcClk2xWholeNote          CordSource = 144
	SrcClkWholeNote            CordSource = 145
	SrcClkHalfNote             CordSource = 146
	SrcClkQuarterNote          CordSource = 147
	SrcClk8thNote              CordSource = 148
	SrcClk16thNote             CordSource = 149
	SrcClk4xWholeNote          CordSource = 150
	SrcClk8xWholeNote          CordSource = 151
	SrcDCOffset                CordSource = 160
	SrcSummingAmp              CordSource = 161
	SrcSwitch                  CordSource = 162
	SrcAbsoluteValue           CordSource = 163
	SrcDiode                   CordSource = 164
	SrcFlipFlop                CordSource = 165
	SrcQuantizer               CordSource = 166
	SrcGain4x                  CordSource = 167
	SrcFuncGen1Pos             CordSource = 208
	SrcFuncGen1Center          CordSource = 209
	SrcFuncGen1Less            CordSource = 210
	SrcFuncGen1Trigger         CordSource = 211
	SrcFuncGen1Gate            CordSource = 212
	SrcFuncGen2Pos             CordSource = 213
	SrcFuncGen2Center          CordSource = 214
	SrcFuncGen2Less            CordSource = 215
	SrcFuncGen2Trigger         CordSource = 216
	SrcFuncGen2Gate            CordSource = 217
	SrcFuncGen3Pos             CordSource = 218
	SrcFuncGen3Center          CordSource = 219
	SrcFuncGen3Less            CordSource = 220
	SrcFuncGen3Trigger         CordSource = 221
	SrcFuncGen3Gate            CordSource = 222
)

var cordSourceNames = map[CordSource]string{
	SrcOff:                     "SRC_OFF",
	SrcXfadeRandom:             "XFADE_RANDOM",
	SrcKeyPolarityPos:          "KEY_POLARITY_POS",
	SrcKeyPolarityCenter:       "KEY_POLARITY_CENTER",
	SrcVelPolarityPos:          "VEL_POLARITY_POS",
	SrcVelPolarityCenter:       "VEL_POLARITY_CENTER",
	SrcVelPolarityLess:         "VEL_POLARITY_LESS",
	SrcReleaseVel:              "RELEASE_VEL",
	SrcGate:                    "GATE",
	SrcPitchWheel:              "PITCH_WHEEL",
	SrcModWheel:                "MOD_WHEEL",
	SrcPressure:                "PRESSURE",
	SrcPedal:                   "PEDAL",
	SrcMIDIA:                   "MIDI_A",
	SrcMIDIB:                   "MIDI_B",
	SrcFootswitch1:             "FOOTSWITCH_1",
	SrcFootswitch2:             "FOOTSWITCH_2",
	SrcFootswitch1Ff:           "FOOTSWITCH_1_FF",
	SrcFootswitch2Ff:           "FOOTSWITCH_2_FF",
	SrcMIDIVolume:              "MIDI_VOLUME",
	SrcMIDIPan:                 "MIDI_PAN",
	SrcExpression:              "EXPRESSION",
	SrcMIDIC:                   "MIDI_C",
	SrcMIDID:                   "MIDI_D",
	SrcMIDIE:                   "MIDI_E",
	SrcMIDIF:                   "MIDI_F",
	SrcMIDIG:                   "MIDI_G",
	SrcMIDIH:                   "MIDI_H",
	SrcTSwitch:                 "T_SWITCH",
	SrcTSwitchFf:               "T_SWITCH_FF",
	SrcMIDII:                   "MIDI_I",
	SrcMIDIJ:                   "MIDI_J",
	SrcMIDIK:                   "MIDI_K",
	SrcMIDIL:                   "MIDI_L",
	SrcMIDIM:                   "MIDI_M",
	SrcMIDIN:                   "MIDI_N",
	SrcMIDIO:                   "MIDI_O",
	SrcMIDIP:                   "MIDI_P",
	SrcKeyGlide:                "KEY_GLIDE",
	SrcKeyCcWin:                "KEY_CC_WIN",
	SrcAmpEnvPolarityPos:       "AMP_ENV_POLARITY_POS",
	SrcAmpEnvPolarityCenter:    "AMP_ENV_POLARITY_CENTER",
	SrcAmpEnvPolarityLess:      "AMP_ENV_POLARITY_LESS",
	SrcFilterEnvPolarityPos:    "FILTER_ENV_POLARITY_POS",
	SrcFilterEnvPolarityCenter: "FILTER_ENV_POLARITY_CENTER",
	SrcFilterEnvPolarityLess:   "FILTER_ENV_POLARITY_LESS",
	SrcAuxEnvPolarityPos:       "AUX_ENV_POLARITY_POS",
	SrcAuxEnvPolarityCenter:    "AUX_ENV_POLARITY_CENTER",
	SrcAuxEnvPolarityLess:      "AUX_ENV_POLARITY_LESS",
	SrcLFO1PolarityCenter:      "LFO1_POLARITY_CENTER",
	SrcLFO1PolarityPos:         "LFO1_POLARITY_POS",
	SrcWhiteNoise:              "WHITE_NOISE",
	SrcPinkNoise:               "PINK_NOISE",
	SrcKeyRandom1:              "KEY_RANDOM_1",
	SrcKeyRandom2:              "KEY_RANDOM_2",
	SrcLFO2PolarityCenter:      "LFO2_POLARITY_CENTER",
	SrcLFO2PolarityPos:         "LFO2_POLARITY_POS",
	SrcLag1In:                  "LAG_1_IN",
	SrcLag1:                    "LAG_1",
	SrcLag2In:                  "LAG_2_IN",
	SrcLag2:                    "LAG_2",
	SrcChannelLag1:             "CHANNEL_LAG_1",
	SrcChannelRamp:             "CHANNEL_RAMP",
	SrcChannelLag2:             "CHANNEL_LAG_2",
	SrcPolyKeyTimer:            "POLY_KEY_TIMER",
	SrcClk2xWholeNote:          "CLK_2X_WHOLE_NOTE",
	SrcClkWholeNote:            "CLK_WHOLE_NOTE",
	SrcClkHalfNote:             "CLK_HALF_NOTE",
	SrcClkQuarterNote:          "CLK_QUARTER_NOTE",
	SrcClk8thNote:              "CLK_8TH_NOTE",
	SrcClk16thNote:             "CLK_16TH_NOTE",
	SrcClk4xWholeNote:          "CLK_4X_WHOLE_NOTE",
	SrcClk8xWholeNote:          "CLK_8X_WHOLE_NOTE",
	SrcDCOffset:                "DC_OFFSET",
	SrcSummingAmp:              "SUMMING_AMP",
	SrcSwitch:                  "SWITCH",
	SrcAbsoluteValue:           "ABSOLUTE_VALUE",
	SrcDiode:                   "DIODE",
	SrcFlipFlop:                "FLIP_FLOP",
	SrcQuantizer:               "QUANTIZER",
	SrcGain4x:                  "GAIN_4X",
	SrcFuncGen1Pos:             "FUNC_GEN_1_POS",
	SrcFuncGen1Center:          "FUNC_GEN_1_CENTER",
	SrcFuncGen1Less:            "FUNC_GEN_1_LESS",
	SrcFuncGen1Trigger:         "FUNC_GEN_1_TRIGGER",
	SrcFuncGen1Gate:            "FUNC_GEN_1_GATE",
	SrcFuncGen2Pos:             "FUNC_GEN_2_POS",
	SrcFuncGen2Center:          "FUNC_GEN_2_CENTER",
	SrcFuncGen2Less:            "FUNC_GEN_2_LESS",
	SrcFuncGen2Trigger:         "FUNC_GEN_2_TRIGGER",
	SrcFuncGen2Gate:            "FUNC_GEN_2_GATE",
	SrcFuncGen3Pos:             "FUNC_GEN_3_POS",
	SrcFuncGen3Center:          "FUNC_GEN_3_CENTER",
	SrcFuncGen3Less:            "FUNC_GEN_3_LESS",
	SrcFuncGen3Trigger:         "FUNC_GEN_3_TRIGGER",
	SrcFuncGen3Gate:            "FUNC_GEN_3_GATE",
}

func (v CordSource) String() string {
	if s, ok := cordSourceNames[v]; ok {
		return s
	}
	return fmt.Sprintf("CordSource(%d)", uint8(v))
}

// ----------------------------------------------------------------------
// CordDest
// ----------------------------------------------------------------------

// CordDest はモジュレーションコードの出力先です。
type CordDest uint8

const (
	DstOff                CordDest = 0
	DstKeySustain         CordDest = 8
	DstLoopSelectCont     CordDest = 16
	DstLoopSelectJump     CordDest = 17
	DstFinePitch          CordDest = 47
	DstPitch              CordDest = 48
	DstGlideRate          CordDest = 49
	DstChorusAmt          CordDest = 50
	DstChorusInitial      CordDest = 51
	DstSampleStart        CordDest = 52
	DstSampleLoop         CordDest = 53
	DstSampleRetriggerNeg CordDest = 54
	DstOscSpeed           CordDest = 55
	DstFilterFreq         CordDest = 56
	DstFilterRes          CordDest = 57
	DstRealtimeRes        CordDest = 58
	DstSampleRetriggerPos CordDest = 59
	DstAmpVolume          CordDest = 64
	DstAmpPan             CordDest = 65
	DstAmpCrossfade       CordDest = 66
	DstSendMain           CordDest = 68
	DstSendAux1           CordDest = 69
	DstSendAux2           CordDest = 70
	DstSendAux3           CordDest = 71
	DstAmpEnvRates        CordDest = 72
	DstAmpEnvAttack       CordDest = 73
	DstAmpEnvDecay        CordDest = 74
	DstAmpEnvRelease      CordDest = 75
	DstAmpEnvSustain      CordDest = 76
	DstFilterEnvRates     CordDest = 80
	DstFilterEnvAttack    CordDest = 81
	DstFilterEnvDecay     CordDest = 82
	DstFilterEnvRelease   CordDest = 83
	DstFilterEnvSustain   CordDest = 84
	DstFilterEnvTrigger   CordDest = 86
	DstAuxEnvRates        CordDest = 88
	DstAuxEnvAttack       CordDest = 89
	DstAuxEnvDecay        CordDest = 90
	DstAuxEnvRelease      CordDest = 91
	DstAuxEnvSustain      CordDest = 92
	DstAuxEnvTrigger      CordDest = 94
	DstLFO1Freq           CordDest = 96
	DstLFO1Trig           CordDest = 97
	DstLFO2Freq           CordDest = 104
	DstLFO2Trig           CordDest = 105
	DstLag1In             CordDest = 106
	DstLag2In             CordDest = 108
	DstLag1Rate           CordDest = 109
	DstLag2Rate           CordDest = 110
	DstFuncGen1Rate       CordDest = 112
	DstFuncGen1Retrigger  CordDest = 113
	DstFuncGen1Length     CordDest = 114
	DstFuncGen1Direction  CordDest = 115
	DstFuncGen2Rate       CordDest = 117
	DstFuncGen2Retrigger  CordDest = 118
	DstFuncGen2Length     CordDest = 119
	DstFuncGen2Direction  CordDest = 120
	DstFuncGen3Rate       CordDest = 122
	DstFuncGen3Retrigger  CordDest = 123
	DstFuncGen3Length     CordDest = 124
	DstFuncGen3Direction  CordDest = 125
	DstKeyTimerRate       CordDest = 132
	DstWetDryMix          CordDest = 144
	DstSummingAmp         CordDest = 161
	DstSwitch             CordDest = 162
	DstAbsoluteValue      CordDest = 163
	DstDiode              CordDest = 164
	DstQuantizer          CordDest = 165
	DstFlipFlop           CordDest = 166
	DstGain4x             CordDest = 167
	DstCord1Amt           CordDest = 168
	DstCord2Amt           CordDest = 169
	DstCord3Amt           CordDest = 170
	DstCord4Amt           CordDest = 171
	DstCord5Amt           CordDest = 172
	DstCord6Amt           CordDest = 173
	DstCord7Amt           CordDest = 174
	DstCord8Amt           CordDest = 175
	DstCord9Amt           CordDest = 176
	DstCord10Amt          CordDest = 177
	DstCord11Amt          CordDest = 178
	DstCord12Amt          CordDest = 179
	DstCord13Amt          CordDest = 180
	DstCord14Amt          CordDest = 181
	DstCord15Amt          CordDest = 182
	DstCord16Amt          CordDest = 183
	DstCord17Amt          CordDest = 184
	DstCord18Amt          CordDest = 185
	DstCord19Amt          CordDest = 186
	DstCord20Amt          CordDest = 187
	DstCord21Amt          CordDest = 188
	DstCord22Amt          CordDest = 189
	DstCord23Amt          CordDest = 190
	DstCord24Amt          CordDest = 191
	DstCord25Amt          CordDest = 192
	DstCord26Amt          CordDest = 193
	DstCord27Amt          CordDest = 194
	DstCord28Amt          CordDest = 195
	DstCord29Amt          CordDest = 196
	DstCord30Amt          CordDest = 197
	DstCord31Amt          CordDest = 198
	DstCord32Amt          CordDest = 199
	DstCord33Amt          CordDest = 200
	DstCord34Amt          CordDest = 201
	DstCord35Amt          CordDest = 202
	DstCord36Amt          CordDest = 203
)

var cordDestNames = map[CordDest]string{
	DstOff:                "DST_OFF",
	DstKeySustain:         "KEY_SUSTAIN",
	DstLoopSelectCont:     "LOOP_SELECT_CONT",
	DstLoopSelectJump:     "LOOP_SELECT_JUMP",
	DstFinePitch:          "FINE_PITCH",
	DstPitch:              "PITCH",
	DstGlideRate:          "GLIDE_RATE",
	DstChorusAmt:          "CHORUS_AMT",
	DstChorusInitial:      "CHORUS_INITIAL",
	DstSampleStart:        "SAMPLE_START",
	DstSampleLoop:         "SAMPLE_LOOP",
	DstSampleRetriggerNeg: "SAMPLE_RETRIGGER_NEG",
	DstOscSpeed:           "OSC_SPEED",
	DstFilterFreq:         "FILTER_FREQ",
	DstFilterRes:          "FILTER_RES",
	DstRealtimeRes:        "REALTIME_RES",
	DstSampleRetriggerPos: "SAMPLE_RETRIGGER_POS",
	DstAmpVolume:          "AMP_VOLUME",
	DstAmpPan:             "AMP_PAN",
	DstAmpCrossfade:       "AMP_CROSSFADE",
	DstSendMain:           "SEND_MAIN",
	DstSendAux1:           "SEND_AUX_1",
	DstSendAux2:           "SEND_AUX_2",
	DstSendAux3:           "SEND_AUX_3",
	DstAmpEnvRates:        "AMP_ENV_RATES",
	DstAmpEnvAttack:       "AMP_ENV_ATTACK",
	DstAmpEnvDecay:        "AMP_ENV_DECAY",
	DstAmpEnvRelease:      "AMP_ENV_RELEASE",
	DstAmpEnvSustain:      "AMP_ENV_SUSTAIN",
	DstFilterEnvRates:     "FILTER_ENV_RATES",
	DstFilterEnvAttack:    "FILTER_ENV_ATTACK",
	DstFilterEnvDecay:     "FILTER_ENV_DECAY",
	DstFilterEnvRelease:   "FILTER_ENV_RELEASE",
	DstFilterEnvSustain:   "FILTER_ENV_SUSTAIN",
	DstFilterEnvTrigger:   "FILTER_ENV_TRIGGER",
	DstAuxEnvRates:        "AUX_ENV_RATES",
	DstAuxEnvAttack:       "AUX_ENV_ATTACK",
	DstAuxEnvDecay:        "AUX_ENV_DECAY",
	DstAuxEnvRelease:      "AUX_ENV_RELEASE",
	DstAuxEnvSustain:      "AUX_ENV_SUSTAIN",
	DstAuxEnvTrigger:      "AUX_ENV_TRIGGER",
	DstLFO1Freq:           "LFO_1_FREQ",
	DstLFO1Trig:           "LFO_1_TRIG",
	DstLFO2Freq:           "LFO_2_FREQ",
	DstLFO2Trig:           "LFO_2_TRIG",
	DstLag1In:             "LAG_1_IN",
	DstLag2In:             "LAG_2_IN",
	DstLag1Rate:           "LAG_1_RATE",
	DstLag2Rate:           "LAG_2_RATE",
	DstFuncGen1Rate:       "FUNC_GEN_1_RATE",
	DstFuncGen1Retrigger:  "FUNC_GEN_1_RETRIGGER",
	DstFuncGen1Length:     "FUNC_GEN_1_LENGTH",
	DstFuncGen1Direction:  "FUNC_GEN_1_DIRECTION",
	DstFuncGen2Rate:       "FUNC_GEN_2_RATE",
	DstFuncGen2Retrigger:  "FUNC_GEN_2_RETRIGGER",
	DstFuncGen2Length:     "FUNC_GEN_2_LENGTH",
	DstFuncGen2Direction:  "FUNC_GEN_2_DIRECTION",
	DstFuncGen3Rate:       "FUNC_GEN_3_RATE",
	DstFuncGen3Retrigger:  "FUNC_GEN_3_RETRIGGER",
	DstFuncGen3Length:     "FUNC_GEN_3_LENGTH",
	DstFuncGen3Direction:  "FUNC_GEN_3_DIRECTION",
	DstKeyTimerRate:       "KEY_TIMER_RATE",
	DstWetDryMix:          "WET_DRY_MIX",
	DstSummingAmp:         "SUMMING_AMP",
	DstSwitch:             "SWITCH",
	DstAbsoluteValue:      "ABSOLUTE_VALUE",
	DstDiode:              "DIODE",
	DstQuantizer:          "QUANTIZER",
	DstFlipFlop:           "FLIP_FLOP",
	DstGain4x:             "GAIN_4X",
	DstCord1Amt:           "CORD_1_AMT",
	DstCord2Amt:           "CORD_2_AMT",
	DstCord3Amt:           "CORD_3_AMT",
	DstCord4Amt:           "CORD_4_AMT",
	DstCord5Amt:           "CORD_5_AMT",
	DstCord6Amt:           "CORD_6_AMT",
	DstCord7Amt:           "CORD_7_AMT",
	DstCord8Amt:           "CORD_8_AMT",
	DstCord9Amt:           "CORD_9_AMT",
	DstCord10Amt:          "CORD_10_AMT",
	DstCord11Amt:          "CORD_11_AMT",
	DstCord12Amt:          "CORD_12_AMT",
	DstCord13Amt:          "CORD_13_AMT",
	DstCord14Amt:          "CORD_14_AMT",
	DstCord15Amt:          "CORD_15_AMT",
	DstCord16Amt:          "CORD_16_AMT",
	DstCord17Amt:          "CORD_17_AMT",
	DstCord18Amt:          "CORD_18_AMT",
	DstCord19Amt:          "CORD_19_AMT",
	DstCord20Amt:          "CORD_20_AMT",
	DstCord21Amt:          "CORD_21_AMT",
	DstCord22Amt:          "CORD_22_AMT",
	DstCord23Amt:          "CORD_23_AMT",
	DstCord24Amt:          "CORD_24_AMT",
	DstCord25Amt:          "CORD_25_AMT",
	DstCord26Amt:          "CORD_26_AMT",
	DstCord27Amt:          "CORD_27_AMT",
	DstCord28Amt:          "CORD_28_AMT",
	DstCord29Amt:          "CORD_29_AMT",
	DstCord30Amt:          "CORD_30_AMT",
	DstCord31Amt:          "CORD_31_AMT",
	DstCord32Amt:          "CORD_32_AMT",
	DstCord33Amt:          "CORD_33_AMT",
	DstCord34Amt:          "CORD_34_AMT",
	DstCord35Amt:          "CORD_35_AMT",
	DstCord36Amt:          "CORD_36_AMT",
}

func (v CordDest) String() string {
	if s, ok := cordDestNames[v]; ok {
		return s
	}
	return fmt.Sprintf("CordDest(%d)", uint8(v))
}

// ----------------------------------------------------------------------
// FilterType
// ----------------------------------------------------------------------

// FilterType はボイスのフィルター種別です。
type FilterType uint8

const (
	FilterTwoPoleLowpass        FilterType = 1
	FilterFourPoleLowpass       FilterType = 0
	FilterSixPoleLowpass        FilterType = 2
	FilterTwoPoleHighpass       FilterType = 8
	FilterFourPoleHighpass      FilterType = 9
	FilterContraryBandpass      FilterType = 18
	FilterSweptEQ1Octave        FilterType = 32
	FilterSweptEQ2_1Octave      FilterType = 33
	FilterSweptEQ3_1Octave      FilterType = 34
	FilterPhaser1               FilterType = 64
	FilterPhaser2               FilterType = 65
	FilterBatPhaser             FilterType = 66
	FilterFlangerLite           FilterType = 72
	FilterVocalAhAyEe           FilterType = 80
	FilterVocalOoAh             FilterType = 81
	FilterDualEQMorph           FilterType = 96
	FilterDualEQLpMorph         FilterType = 97
	FilterDualEQMorphExpression FilterType = 98
	FilterPeakShelfMorph        FilterType = 104
	FilterMorphDesigner         FilterType = 108
	FilterNoFilter              FilterType = 127
	FilterAceOfBass             FilterType = 131
	FilterMegasweepz            FilterType = 132
	FilterEarlyRizer            FilterType = 133
	FilterMillennium            FilterType = 134
	FilterMeatyGizmo            FilterType = 135
	FilterKlubKlassik           FilterType = 136
	FilterBassbox303            FilterType = 137
	FilterFuzziFace             FilterType = 138
	FilterDeadRinger            FilterType = 139
	FilterTbOrNotTb             FilterType = 140
	FilterOohToEee              FilterType = 141
	FilterBolandBass            FilterType = 142
	FilterMultiQVox             FilterType = 143
	FilterTalkingHedz           FilterType = 144
	FilterZoomPeaks             FilterType = 145
	FilterDjAlkaline            FilterType = 146
	FilterBassTracer            FilterType = 147
	FilterRogueHertz            FilterType = 148
	FilterRazorBlades           FilterType = 149
	FilterRadioCraze            FilterType = 150
	FilterEehToAah              FilterType = 151
	FilterUbuOrator             FilterType = 152
	FilterDeepBouche            FilterType = 153
	FilterFreakShifta           FilterType = 154
	FilterCruzPusher            FilterType = 155
	FilterAngelzHairz           FilterType = 156
	FilterDreamWeava            FilterType = 157
	FilterAcidRavage            FilterType = 158
	FilterBassOMatic            FilterType = 159
	FilterLucifersQ             FilterType = 160
	FilterToothComb             FilterType = 161
	FilterEarBender             FilterType = 162
	FilterKlangKling            FilterType = 163
)

var filterTypeNames = map[FilterType]string{
	FilterTwoPoleLowpass:        "TWO_POLE_LOWPASS",
	FilterFourPoleLowpass:       "FOUR_POLE_LOWPASS",
	FilterSixPoleLowpass:        "SIX_POLE_LOWPASS",
	FilterTwoPoleHighpass:       "TWO_POLE_HIGHPASS",
	FilterFourPoleHighpass:      "FOUR_POLE_HIGHPASS",
	FilterContraryBandpass:      "CONTRARY_BANDPASS",
	FilterSweptEQ1Octave:        "SWEPT_EQ_1_OCTAVE",
	FilterSweptEQ2_1Octave:      "SWEPT_EQ_2_1_OCTAVE",
	FilterSweptEQ3_1Octave:      "SWEPT_EQ_3_1_OCTAVE",
	FilterPhaser1:               "PHASER_1",
	FilterPhaser2:               "PHASER_2",
	FilterBatPhaser:             "BAT_PHASER",
	FilterFlangerLite:           "FLANGER_LITE",
	FilterVocalAhAyEe:           "VOCAL_AH_AY_EE",
	FilterVocalOoAh:             "VOCAL_OO_AH",
	FilterDualEQMorph:           "DUAL_EQ_MORPH",
	FilterDualEQLpMorph:         "DUAL_EQ_LP_MORPH",
	FilterDualEQMorphExpression: "DUAL_EQ_MORPH_EXPRESSION",
	FilterPeakShelfMorph:        "PEAK_SHELF_MORPH",
	FilterMorphDesigner:         "MORPH_DESIGNER",
	FilterNoFilter:              "NO_FILTER",
	FilterAceOfBass:             "ACE_OF_BASS",
	FilterMegasweepz:            "MEGASWEEPZ",
	FilterEarlyRizer:            "EARLY_RIZER",
	FilterMillennium:            "MILLENNIUM",
	FilterMeatyGizmo:            "MEATY_GIZMO",
	FilterKlubKlassik:           "KLUB_KLASSIK",
	FilterBassbox303:            "BASSBOX_303",
	FilterFuzziFace:             "FUZZI_FACE",
	FilterDeadRinger:            "DEAD_RINGER",
	FilterTbOrNotTb:             "TB_OR_NOT_TB",
	FilterOohToEee:              "OOH_TO_EEE",
	FilterBolandBass:            "BOLAND_BASS",
	FilterMultiQVox:             "MULTI_Q_VOX",
	FilterTalkingHedz:           "TALKING_HEDZ",
	FilterZoomPeaks:             "ZOOM_PEAKS",
	FilterDjAlkaline:            "DJ_ALKALINE",
	FilterBassTracer:            "BASS_TRACER",
	FilterRogueHertz:            "ROGUE_HERTZ",
	FilterRazorBlades:           "RAZOR_BLADES",
	FilterRadioCraze:            "RADIO_CRAZE",
	FilterEehToAah:              "EEH_TO_AAH",
	FilterUbuOrator:             "UBU_ORATOR",
	FilterDeepBouche:            "DEEP_BOUCHE",
	FilterFreakShifta:           "FREAK_SHIFTA",
	FilterCruzPusher:            "CRUZ_PUSHER",
	FilterAngelzHairz:           "ANGELZ_HAIRZ",
	FilterDreamWeava:            "DREAM_WEAVA",
	FilterAcidRavage:            "ACID_RAVAGE",
	FilterBassOMatic:            "BASS_O_MATIC",
	FilterLucifersQ:             "LUCIFERS_Q",
	FilterToothComb:             "TOOTH_COMB",
	FilterEarBender:             "EAR_BENDER",
	FilterKlangKling:            "KLANG_KLING",
}

func (v FilterType) String() string {
	if s, ok := filterTypeNames[v]; ok {
		return s
	}
	return fmt.Sprintf("FilterType(%d)", uint8(v))
}

// ----------------------------------------------------------------------
// GlideCurve
// ----------------------------------------------------------------------

// GlideCurve はグライドのカーブです。
type GlideCurve uint8

const (
	GlideLinear      GlideCurve = 0
	GlideLogLinear1  GlideCurve = 1
	GlideLogLinear2  GlideCurve = 2
	GlideLogLinear3  GlideCurve = 3
	GlideLogLinear4  GlideCurve = 4
	GlideLogLinear5  GlideCurve = 5
	GlideLogLinear6  GlideCurve = 6
	GlideLogLinear7  GlideCurve = 7
	GlideLogarithmic GlideCurve = 8
)

var glideCurveNames = map[GlideCurve]string{
	GlideLinear:      "LINEAR",
	GlideLogLinear1:  "LOG_LINEAR1",
	GlideLogLinear2:  "LOG_LINEAR2",
	GlideLogLinear3:  "LOG_LINEAR3",
	GlideLogLinear4:  "LOG_LINEAR4",
	GlideLogLinear5:  "LOG_LINEAR5",
	GlideLogLinear6:  "LOG_LINEAR6",
	GlideLogLinear7:  "LOG_LINEAR7",
	GlideLogarithmic: "LOGARITHMIC",
}

func (v GlideCurve) String() string {
	if s, ok := glideCurveNames[v]; ok {
		return s
	}
	return fmt.Sprintf("GlideCurve(%d)", uint8(v))
}

// ----------------------------------------------------------------------
// AssignGroup
// ----------------------------------------------------------------------

// AssignGroup はキーアサイングループ (発音数の割り当て) です。
type AssignGroup uint8

const (
	AssignPolyAll   AssignGroup = 0
	AssignPoly16A   AssignGroup = 1
	AssignPoly16B   AssignGroup = 2
	AssignPoly8A    AssignGroup = 3
	AssignPoly8B    AssignGroup = 4
	AssignPoly8C    AssignGroup = 5
	AssignPoly8D    AssignGroup = 6
	AssignPoly4A    AssignGroup = 7
	AssignPoly4B    AssignGroup = 8
	AssignPoly4C    AssignGroup = 9
	AssignPoly4D    AssignGroup = 10
	AssignPoly2A    AssignGroup = 11
	AssignPoly2B    AssignGroup = 12
	AssignPoly2C    AssignGroup = 13
	AssignPoly2D    AssignGroup = 14
	AssignMonoA     AssignGroup = 15
	AssignMonoB     AssignGroup = 16
	AssignMonoC     AssignGroup = 17
	AssignMonoD     AssignGroup = 18
	AssignMonoE     AssignGroup = 19
	AssignMonoF     AssignGroup = 20
	AssignMonoG     AssignGroup = 21
	AssignMonoH     AssignGroup = 22
	AssignMonoI     AssignGroup = 23
	AssignPolyKey8A AssignGroup = 24
	AssignPolyKey8B AssignGroup = 25
	AssignPolyKey8C AssignGroup = 26
	AssignPolyKey8D AssignGroup = 27
	AssignPolyKey6A AssignGroup = 28
	AssignPolyKey6B AssignGroup = 29
	AssignPolyKey6C AssignGroup = 30
	AssignPolyKey6D AssignGroup = 31
	AssignPolyKey5A AssignGroup = 32
	AssignPolyKey5B AssignGroup = 33
	AssignPolyKey5C AssignGroup = 34
	AssignPolyKey5D AssignGroup = 35
	AssignPolyKey4A AssignGroup = 36
	AssignPolyKey4B AssignGroup = 37
	AssignPolyKey4C AssignGroup = 38
	AssignPolyKey4D AssignGroup = 39
	AssignPolyKey3A AssignGroup = 40
	AssignPolyKey3B AssignGroup = 41
	AssignPolyKey3C AssignGroup = 42
	AssignPolyKey3D AssignGroup = 43
	AssignPolyKey2A AssignGroup = 44
	AssignPolyKey2B AssignGroup = 45
	AssignPolyKey2C AssignGroup = 46
	AssignPolyKey2D AssignGroup = 47
	AssignPolyKey1A AssignGroup = 48
	AssignPolyKey1B AssignGroup = 49
	AssignPolyKey1C AssignGroup = 50
	AssignPolyKey1D AssignGroup = 51
)

var assignGroupNames = map[AssignGroup]string{
	AssignPolyAll:   "POLY_ALL",
	AssignPoly16A:   "POLY16_A",
	AssignPoly16B:   "POLY16_B",
	AssignPoly8A:    "POLY8_A",
	AssignPoly8B:    "POLY8_B",
	AssignPoly8C:    "POLY8_C",
	AssignPoly8D:    "POLY8_D",
	AssignPoly4A:    "POLY4_A",
	AssignPoly4B:    "POLY4_B",
	AssignPoly4C:    "POLY4_C",
	AssignPoly4D:    "POLY4_D",
	AssignPoly2A:    "POLY2_A",
	AssignPoly2B:    "POLY2_B",
	AssignPoly2C:    "POLY2_C",
	AssignPoly2D:    "POLY2_D",
	AssignMonoA:     "MONO_A",
	AssignMonoB:     "MONO_B",
	AssignMonoC:     "MONO_C",
	AssignMonoD:     "MONO_D",
	AssignMonoE:     "MONO_E",
	AssignMonoF:     "MONO_F",
	AssignMonoG:     "MONO_G",
	AssignMonoH:     "MONO_H",
	AssignMonoI:     "MONO_I",
	AssignPolyKey8A: "POLY_KEY_8_A",
	AssignPolyKey8B: "POLY_KEY_8_B",
	AssignPolyKey8C: "POLY_KEY_8_C",
	AssignPolyKey8D: "POLY_KEY_8_D",
	AssignPolyKey6A: "POLY_KEY_6_A",
	AssignPolyKey6B: "POLY_KEY_6_B",
	AssignPolyKey6C: "POLY_KEY_6_C",
	AssignPolyKey6D: "POLY_KEY_6_D",
	AssignPolyKey5A: "POLY_KEY_5_A",
	AssignPolyKey5B: "POLY_KEY_5_B",
	AssignPolyKey5C: "POLY_KEY_5_C",
	AssignPolyKey5D: "POLY_KEY_5_D",
	AssignPolyKey4A: "POLY_KEY_4_A",
	AssignPolyKey4B: "POLY_KEY_4_B",
	AssignPolyKey4C: "POLY_KEY_4_C",
	AssignPolyKey4D: "POLY_KEY_4_D",
	AssignPolyKey3A: "POLY_KEY_3_A",
	AssignPolyKey3B: "POLY_KEY_3_B",
	AssignPolyKey3C: "POLY_KEY_3_C",
	AssignPolyKey3D: "POLY_KEY_3_D",
	AssignPolyKey2A: "POLY_KEY_2_A",
	AssignPolyKey2B: "POLY_KEY_2_B",
	AssignPolyKey2C: "POLY_KEY_2_C",
	AssignPolyKey2D: "POLY_KEY_2_D",
	AssignPolyKey1A: "POLY_KEY_1_A",
	AssignPolyKey1B: "POLY_KEY_1_B",
	AssignPolyKey1C: "POLY_KEY_1_C",
	AssignPolyKey1D: "POLY_KEY_1_D",
}

func (v AssignGroup) String() string {
	if s, ok := assignGroupNames[v]; ok {
		return s
	}
	return fmt.Sprintf("AssignGroup(%d)", uint8(v))
}

// ----------------------------------------------------------------------
// KeyMode
// ----------------------------------------------------------------------

// KeyMode はボイスの発音モードです。
type KeyMode uint8

const (
	KeyModePolyNormal          KeyMode = 0
	KeyModeSoloMultiTrigger    KeyMode = 1
	KeyModeSoloMelodyLast      KeyMode = 2
	KeyModeSoloMelodyLow       KeyMode = 3
	KeyModeSoloMelodyHigh      KeyMode = 4
	KeyModeSoloSynthLast       KeyMode = 5
	KeyModeSoloSynthLow        KeyMode = 6
	KeyModeSoloSynthHigh       KeyMode = 7
	KeyModeSoloFingeredGlide   KeyMode = 8
	KeyModePolyRelTrigRelVel   KeyMode = 9
	KeyModePolyRelTrigNoteVel  KeyMode = 10
	KeyModeSoloRelTrigRelVel   KeyMode = 11
	KeyModeSoloRelTrigNoteVel  KeyMode = 12
	KeyModePolyRelTrigRelVel2  KeyMode = 13
	KeyModePolyRelTrigNoteVel2 KeyMode = 14
)

var keyModeNames = map[KeyMode]string{
	KeyModePolyNormal:          "POLY_NORMAL",
	KeyModeSoloMultiTrigger:    "SOLO_MULTI_TRIGGER",
	KeyModeSoloMelodyLast:      "SOLO_MELODY_LAST",
	KeyModeSoloMelodyLow:       "SOLO_MELODY_LOW",
	KeyModeSoloMelodyHigh:      "SOLO_MELODY_HIGH",
	KeyModeSoloSynthLast:       "SOLO_SYNTH_LAST",
	KeyModeSoloSynthLow:        "SOLO_SYNTH_LOW",
	KeyModeSoloSynthHigh:       "SOLO_SYNTH_HIGH",
	KeyModeSoloFingeredGlide:   "SOLO_FINGERED_GLIDE",
	KeyModePolyRelTrigRelVel:   "POLY_REL_TRIG_REL_VEL",
	KeyModePolyRelTrigNoteVel:  "POLY_REL_TRIG_NOTE_VEL",
	KeyModeSoloRelTrigRelVel:   "SOLO_REL_TRIG_REL_VEL",
	KeyModeSoloRelTrigNoteVel:  "SOLO_REL_TRIG_NOTE_VEL",
	KeyModePolyRelTrigRelVel2:  "POLY_REL_TRIG_REL_VEL_2",
	KeyModePolyRelTrigNoteVel2: "POLY_REL_TRIG_NOTE_VEL_2",
}

func (v KeyMode) String() string {
	if s, ok := keyModeNames[v]; ok {
		return s
	}
	return fmt.Sprintf("KeyMode(%d)", uint8(v))
}
