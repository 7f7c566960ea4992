package catalog

// ESPN player stat ids as they appear in appliedStats.
var espnStatNames = map[int]string{
	0:   "passingAttempts",
	1:   "passingCompletions",
	2:   "passingIncompletions",
	3:   "passingYards",
	4:   "passingTouchdowns",
	5:   "passingEvery5Yards",
	6:   "passingEvery10Yards",
	7:   "passingEvery20Yards",
	8:   "passingEvery25Yards",
	9:   "passingEvery50Yards",
	10:  "passingEvery100Yards",
	11:  "passingEvery5Completions",
	12:  "passingEvery10Completions",
	13:  "passingEvery5Incompletions",
	14:  "passingEvery10Incompletions",
	15:  "passing40PlusYardTD",
	16:  "passing50PlusYardTD",
	17:  "passing300To399YardGame",
	18:  "passing400PlusYardGame",
	19:  "passing2PtConversions",
	20:  "passingInterceptions",
	21:  "passingCompletionPercentage",
	22:  "passingYards2",
	23:  "rushingAttempts",
	24:  "rushingYards",
	25:  "rushingTouchdowns",
	26:  "rushing2PtConversions",
	27:  "rushingEvery5Yards",
	28:  "rushingEvery10Yards",
	29:  "rushingEvery20Yards",
	30:  "rushingEvery25Yards",
	31:  "rushingEvery50Yards",
	32:  "rushingEvery100Yards",
	33:  "rushingEvery5Attempts",
	34:  "rushingEvery10Attempts",
	35:  "rushing40PlusYardTD",
	36:  "rushing50PlusYardTD",
	37:  "rushing100To199YardGame",
	38:  "rushing200PlusYardGame",
	39:  "rushingYardsPerAttempt",
	40:  "rushingYards2",
	41:  "receivingReceptions",
	42:  "receivingYards",
	43:  "receivingTouchdowns",
	44:  "receiving2PtConversions",
	45:  "receiving40PlusYardTD",
	46:  "receiving50PlusYardTD",
	47:  "receivingEvery5Yards",
	48:  "receivingEvery10Yards",
	49:  "receivingEvery20Yards",
	50:  "receivingEvery25Yards",
	51:  "receivingEvery50Yards",
	52:  "receivingEvery100Yards",
	53:  "receivingReceptions2",
	54:  "receivingEvery5Receptions",
	55:  "receivingEvery10Receptions",
	56:  "receiving100To199YardGame",
	57:  "receiving200PlusYardGame",
	58:  "receivingTargets",
	59:  "receivingYardsAfterCatch",
	60:  "receivingYardsPerReception",
	62:  "2PtConversions",
	63:  "fumbleRecoveredForTD",
	64:  "passingTimesSacked",
	68:  "fumbles",
	72:  "lostFumbles",
	73:  "turnovers",
	74:  "madeFieldGoalsFrom50Plus",
	75:  "attemptedFieldGoalsFrom50Plus",
	76:  "missedFieldGoalsFrom50Plus",
	77:  "madeFieldGoalsFrom40To49",
	78:  "attemptedFieldGoalsFrom40To49",
	79:  "missedFieldGoalsFrom40To49",
	80:  "madeFieldGoalsFromUnder40",
	81:  "attemptedFieldGoalsFromUnder40",
	82:  "missedFieldGoalsFromUnder40",
	83:  "madeFieldGoals",
	84:  "attemptedFieldGoals",
	85:  "missedFieldGoals",
	86:  "madeExtraPoints",
	87:  "attemptedExtraPoints",
	88:  "missedExtraPoints",
	89:  "defensive0PointsAllowed",
	90:  "defensive1To6PointsAllowed",
	91:  "defensive7To13PointsAllowed",
	92:  "defensive14To17PointsAllowed",
	93:  "defensiveBlockedKickForTouchdowns",
	94:  "defensiveTouchdowns",
	95:  "defensiveInterceptions",
	96:  "defensiveFumbles",
	97:  "defensiveBlockedKicks",
	98:  "defensiveSafeties",
	99:  "defensiveSacks",
	100: "defensiveHalfSacks",
	101: "kickoffReturnTouchdowns",
	102: "puntReturnTouchdowns",
	103: "interceptionReturnTouchdowns",
	104: "fumbleReturnTouchdowns",
	105: "defensivePlusSpecialTeamsTouchdowns",
	106: "defensiveForcedFumbles",
	107: "defensiveAssistedTackles",
	108: "defensiveSoloTackles",
	109: "defensiveTotalTackles",
	113: "defensivePassesDefensed",
	114: "kickoffReturnYards",
	115: "puntReturnYards",
	118: "puntsReturned",
	120: "defensivePointsAllowed",
	121: "defensive18To21PointsAllowed",
	122: "defensive22To27PointsAllowed",
	123: "defensive28To34PointsAllowed",
	124: "defensive35To45PointsAllowed",
	125: "defensive45PlusPointsAllowed",
	127: "defensiveYardsAllowed",
	128: "defensiveLessThan100YardsAllowed",
	129: "defensive100To199YardsAllowed",
	130: "defensive200To299YardsAllowed",
	131: "defensive300To349YardsAllowed",
	132: "defensive350To399YardsAllowed",
	133: "defensive400To449YardsAllowed",
	134: "defensive450To499YardsAllowed",
	135: "defensive500To549YardsAllowed",
	136: "defensive550PlusYardsAllowed",
	138: "netPunts",
	139: "puntYards",
	140: "puntsInsideThe10",
	141: "puntsInsideThe20",
	142: "blockedPunts",
	143: "puntsReturned2",
	144: "puntReturnYards2",
	145: "puntTouchbacks",
	146: "puntFairCatches",
	147: "puntAverage",
	155: "teamWin",
	156: "teamLoss",
	157: "teamTie",
	187: "defensivePointsAllowed2",
	198: "madeFieldGoalsFrom60Plus",
	199: "attemptedFieldGoalsFrom60Plus",
	200: "missedFieldGoalsFrom60Plus",
	201: "madeFieldGoalsFrom50To59",
	202: "attemptedFieldGoalsFrom50To59",
	203: "missedFieldGoalsFrom50To59",
	205: "defensive2PtReturns",
	206: "defensive2PtReturns2",
}

// Category per stat name; anything absent lands in OtherCategory.
var espnStatCategories = map[string]string{
	"passingAttempts":             "Passing",
	"passingCompletions":          "Passing",
	"passingIncompletions":        "Passing",
	"passingYards":                "Passing",
	"passingTouchdowns":           "Passing",
	"passingEvery5Yards":          "Passing",
	"passingEvery10Yards":         "Passing",
	"passingEvery20Yards":         "Passing",
	"passingEvery25Yards":         "Passing",
	"passingEvery50Yards":         "Passing",
	"passingEvery100Yards":        "Passing",
	"passingEvery5Completions":    "Passing",
	"passingEvery10Completions":   "Passing",
	"passingEvery5Incompletions":  "Passing",
	"passingEvery10Incompletions": "Passing",
	"passing40PlusYardTD":         "Passing",
	"passing50PlusYardTD":         "Passing",
	"passing300To399YardGame":     "Passing",
	"passing400PlusYardGame":      "Passing",
	"passing2PtConversions":       "Passing",
	"passingCompletionPercentage": "Passing",
	"passingTimesSacked":          "Passing",

	"rushingAttempts":         "Rushing",
	"rushingYards":            "Rushing",
	"rushingTouchdowns":       "Rushing",
	"rushing2PtConversions":   "Rushing",
	"rushingEvery5Yards":      "Rushing",
	"rushingEvery10Yards":     "Rushing",
	"rushingEvery20Yards":     "Rushing",
	"rushingEvery25Yards":     "Rushing",
	"rushingEvery50Yards":     "Rushing",
	"rushingEvery100Yards":    "Rushing",
	"rushingEvery5Attempts":   "Rushing",
	"rushingEvery10Attempts":  "Rushing",
	"rushing40PlusYardTD":     "Rushing",
	"rushing50PlusYardTD":     "Rushing",
	"rushing100To199YardGame": "Rushing",
	"rushing200PlusYardGame":  "Rushing",
	"rushingYardsPerAttempt":  "Rushing",

	"receivingReceptions":        "Receiving",
	"receivingYards":             "Receiving",
	"receivingTouchdowns":        "Receiving",
	"receiving2PtConversions":    "Receiving",
	"receiving40PlusYardTD":      "Receiving",
	"receiving50PlusYardTD":      "Receiving",
	"receivingEvery5Yards":       "Receiving",
	"receivingEvery10Yards":      "Receiving",
	"receivingEvery20Yards":      "Receiving",
	"receivingEvery25Yards":      "Receiving",
	"receivingEvery50Yards":      "Receiving",
	"receivingEvery100Yards":     "Receiving",
	"receivingEvery5Receptions":  "Receiving",
	"receivingEvery10Receptions": "Receiving",
	"receiving100To199YardGame":  "Receiving",
	"receiving200PlusYardGame":   "Receiving",
	"receivingTargets":           "Receiving",
	"receivingYardsAfterCatch":   "Receiving",
	"receivingYardsPerReception": "Receiving",

	"passingInterceptions": "Turnovers",
	"fumbles":              "Turnovers",
	"lostFumbles":          "Turnovers",
	"turnovers":            "Turnovers",

	"madeFieldGoalsFrom50Plus":       "Kicking",
	"attemptedFieldGoalsFrom50Plus":  "Kicking",
	"missedFieldGoalsFrom50Plus":     "Kicking",
	"madeFieldGoalsFrom40To49":       "Kicking",
	"attemptedFieldGoalsFrom40To49":  "Kicking",
	"missedFieldGoalsFrom40To49":     "Kicking",
	"madeFieldGoalsFromUnder40":      "Kicking",
	"attemptedFieldGoalsFromUnder40": "Kicking",
	"missedFieldGoalsFromUnder40":    "Kicking",
	"madeFieldGoals":                 "Kicking",
	"attemptedFieldGoals":            "Kicking",
	"missedFieldGoals":               "Kicking",
	"madeExtraPoints":                "Kicking",
	"attemptedExtraPoints":           "Kicking",
	"missedExtraPoints":              "Kicking",
	"madeFieldGoalsFrom60Plus":       "Kicking",
	"attemptedFieldGoalsFrom60Plus":  "Kicking",
	"missedFieldGoalsFrom60Plus":     "Kicking",
	"madeFieldGoalsFrom50To59":       "Kicking",
	"attemptedFieldGoalsFrom50To59":  "Kicking",
	"missedFieldGoalsFrom50To59":     "Kicking",

	"netPunts":         "Punting",
	"puntYards":        "Punting",
	"puntsInsideThe10": "Punting",
	"puntsInsideThe20": "Punting",
	"blockedPunts":     "Punting",
	"puntTouchbacks":   "Punting",
	"puntFairCatches":  "Punting",
	"puntAverage":      "Punting",

	"defensive0PointsAllowed":             "Defense",
	"defensive1To6PointsAllowed":          "Defense",
	"defensive7To13PointsAllowed":         "Defense",
	"defensive14To17PointsAllowed":        "Defense",
	"defensive18To21PointsAllowed":        "Defense",
	"defensive22To27PointsAllowed":        "Defense",
	"defensive28To34PointsAllowed":        "Defense",
	"defensive35To45PointsAllowed":        "Defense",
	"defensive45PlusPointsAllowed":        "Defense",
	"defensivePointsAllowed":              "Defense",
	"defensiveYardsAllowed":               "Defense",
	"defensiveLessThan100YardsAllowed":    "Defense",
	"defensive100To199YardsAllowed":       "Defense",
	"defensive200To299YardsAllowed":       "Defense",
	"defensive300To349YardsAllowed":       "Defense",
	"defensive350To399YardsAllowed":       "Defense",
	"defensive400To449YardsAllowed":       "Defense",
	"defensive450To499YardsAllowed":       "Defense",
	"defensive500To549YardsAllowed":       "Defense",
	"defensive550PlusYardsAllowed":        "Defense",
	"defensiveInterceptions":              "Defense",
	"defensiveFumbles":                    "Defense",
	"defensiveBlockedKicks":               "Defense",
	"defensiveSafeties":                   "Defense",
	"defensiveSacks":                      "Defense",
	"defensiveHalfSacks":                  "Defense",
	"defensiveForcedFumbles":              "Defense",
	"defensiveAssistedTackles":            "Defense",
	"defensiveSoloTackles":                "Defense",
	"defensiveTotalTackles":               "Defense",
	"defensivePassesDefensed":             "Defense",
	"defensive2PtReturns":                 "Defense",
	"defensiveTouchdowns":                 "Defense",
	"defensivePlusSpecialTeamsTouchdowns": "Defense",

	"defensiveBlockedKickForTouchdowns": "Return TDs",
	"kickoffReturnTouchdowns":           "Return TDs",
	"puntReturnTouchdowns":              "Return TDs",
	"interceptionReturnTouchdowns":      "Return TDs",
	"fumbleReturnTouchdowns":            "Return TDs",
	"fumbleRecoveredForTD":              "Return TDs",
	"kickoffReturnYards":                "Return TDs",
	"puntReturnYards":                   "Return TDs",
	"puntsReturned":                     "Return TDs",

	"2PtConversions": "Misc",
	"teamWin":        "Misc",
	"teamLoss":       "Misc",
	"teamTie":        "Misc",
}

// Display formats keyed by stat id, following the league scoring settings UI.
var espnStatFormats = map[int]Format{
	0:   {Abbr: "PA", Label: "Each Pass Attempted"},
	1:   {Abbr: "PC", Label: "Each Pass Completed"},
	2:   {Abbr: "INC", Label: "Each Incomplete Pass"},
	3:   {Abbr: "PY", Label: "Passing Yards"},
	4:   {Abbr: "PTD", Label: "TD Pass"},
	5:   {Abbr: "PY5", Label: "Every 5 passing yards"},
	6:   {Abbr: "PY10", Label: "Every 10 passing yards"},
	7:   {Abbr: "PY20", Label: "Every 20 passing yards"},
	8:   {Abbr: "PY25", Label: "Every 25 passing yards"},
	9:   {Abbr: "PY50", Label: "Every 50 passing yards"},
	10:  {Abbr: "PY100", Label: "Every 100 passing yards"},
	15:  {Abbr: "PTD40", Label: "40+ yard TD pass bonus"},
	16:  {Abbr: "PTD50", Label: "50+ yard TD pass bonus"},
	17:  {Abbr: "P300", Label: "300-399 yard passing game"},
	18:  {Abbr: "P400", Label: "400+ yard passing game"},
	19:  {Abbr: "2PC", Label: "2pt Passing Conversion"},
	20:  {Abbr: "INT", Label: "Interceptions Thrown"},
	23:  {Abbr: "RA", Label: "Rushing Attempts"},
	24:  {Abbr: "RY", Label: "Rushing Yards"},
	25:  {Abbr: "RTD", Label: "TD Rush"},
	26:  {Abbr: "2PR", Label: "2pt Rushing Conversion"},
	27:  {Abbr: "RY5", Label: "Every 5 rushing yards"},
	28:  {Abbr: "RY10", Label: "Every 10 rushing yards"},
	35:  {Abbr: "RTD40", Label: "40+ yard TD rush bonus"},
	36:  {Abbr: "RTD50", Label: "50+ yard TD rush bonus"},
	37:  {Abbr: "RY100", Label: "100-199 yard rushing game"},
	38:  {Abbr: "RY200", Label: "200+ yard rushing game"},
	41:  {Abbr: "REC", Label: "Receptions"},
	42:  {Abbr: "REY", Label: "Receiving Yards"},
	43:  {Abbr: "RETD", Label: "TD Reception"},
	44:  {Abbr: "2PRE", Label: "2pt Receiving Conversion"},
	45:  {Abbr: "RETD40", Label: "40+ yard TD rec bonus"},
	46:  {Abbr: "RETD50", Label: "50+ yard TD rec bonus"},
	47:  {Abbr: "REY5", Label: "Every 5 receiving yards"},
	48:  {Abbr: "REY10", Label: "Every 10 receiving yards"},
	53:  {Abbr: "REC", Label: "Each reception"},
	56:  {Abbr: "REY100", Label: "100-199 yard receiving game"},
	57:  {Abbr: "REY200", Label: "200+ yard receiving game"},
	58:  {Abbr: "RET", Label: "Receiving Target"},
	63:  {Abbr: "FTD", Label: "Fumble Recovered for TD"},
	64:  {Abbr: "SK", Label: "Sacked"},
	68:  {Abbr: "FUM", Label: "Total Fumbles"},
	72:  {Abbr: "FUML", Label: "Total Fumbles Lost"},
	73:  {Abbr: "TO", Label: "Turnovers"},
	74:  {Abbr: "FG50", Label: "FG Made (50+ yards)"},
	76:  {Abbr: "FGM50", Label: "FG Missed (50+ yards)"},
	77:  {Abbr: "FG40", Label: "FG Made (40-49 yards)"},
	79:  {Abbr: "FGM40", Label: "FG Missed (40-49 yards)"},
	80:  {Abbr: "FG0", Label: "FG Made (0-39 yards)"},
	82:  {Abbr: "FGM0", Label: "FG Missed (0-39 yards)"},
	83:  {Abbr: "FG", Label: "Total FG Made"},
	84:  {Abbr: "FGA", Label: "Total FG Attempted"},
	85:  {Abbr: "FGM", Label: "Total FG Missed"},
	86:  {Abbr: "PAT", Label: "Each PAT Made"},
	87:  {Abbr: "PATA", Label: "Each PAT Attempted"},
	88:  {Abbr: "PATM", Label: "Each PAT Missed"},
	89:  {Abbr: "PA0", Label: "0 points allowed"},
	90:  {Abbr: "PA1", Label: "1-6 points allowed"},
	91:  {Abbr: "PA7", Label: "7-13 points allowed"},
	92:  {Abbr: "PA14", Label: "14-17 points allowed"},
	93:  {Abbr: "BLKKRTD", Label: "Blocked Punt or FG return for TD"},
	94:  {Abbr: "DEFTD", Label: "Defensive TD"},
	95:  {Abbr: "INTD", Label: "Each Interception"},
	96:  {Abbr: "FR", Label: "Each Fumble Recovered"},
	97:  {Abbr: "BLKK", Label: "Blocked Punt, PAT or FG"},
	98:  {Abbr: "SF", Label: "Each Safety"},
	99:  {Abbr: "SK", Label: "Each Sack"},
	100: {Abbr: "HALFSK", Label: "1/2 Sack"},
	101: {Abbr: "KRTD", Label: "Kickoff Return TD"},
	102: {Abbr: "PRTD", Label: "Punt Return TD"},
	103: {Abbr: "INTTD", Label: "Interception Return TD"},
	104: {Abbr: "FRTD", Label: "Fumble Return TD"},
	105: {Abbr: "DSTTD", Label: "Defense/Special Teams TD"},
	106: {Abbr: "FF", Label: "Each Fumble Forced"},
	107: {Abbr: "TKA", Label: "Assisted Tackles"},
	108: {Abbr: "TKS", Label: "Solo Tackles"},
	109: {Abbr: "TK", Label: "Total Tackles"},
	113: {Abbr: "PD", Label: "Passes Defensed"},
	114: {Abbr: "KR", Label: "Kickoff Return Yards"},
	115: {Abbr: "PR", Label: "Punt Return Yards"},
	120: {Abbr: "PA", Label: "Points Allowed"},
	121: {Abbr: "PA18", Label: "18-21 points allowed"},
	122: {Abbr: "PA22", Label: "22-27 points allowed"},
	123: {Abbr: "PA28", Label: "28-34 points allowed"},
	124: {Abbr: "PA35", Label: "35-45 points allowed"},
	125: {Abbr: "PA46", Label: "46+ points allowed"},
	127: {Abbr: "YA", Label: "Yards Allowed"},
	128: {Abbr: "YA100", Label: "Less than 100 total yards allowed"},
	129: {Abbr: "YA199", Label: "100-199 total yards allowed"},
	130: {Abbr: "YA299", Label: "200-299 total yards allowed"},
	131: {Abbr: "YA349", Label: "300-349 total yards allowed"},
	132: {Abbr: "YA399", Label: "350-399 total yards allowed"},
	133: {Abbr: "YA449", Label: "400-449 total yards allowed"},
	134: {Abbr: "YA499", Label: "450-499 total yards allowed"},
	135: {Abbr: "YA549", Label: "500-549 total yards allowed"},
	136: {Abbr: "YA550", Label: "550+ total yards allowed"},
	138: {Abbr: "NPY", Label: "Net Punts"},
	139: {Abbr: "PTY", Label: "Punt Yards"},
	140: {Abbr: "PT10", Label: "Punts Inside the 10"},
	141: {Abbr: "PT20", Label: "Punts Inside the 20"},
	142: {Abbr: "PTB", Label: "Blocked Punts"},
	145: {Abbr: "PTTB", Label: "Punt Touchbacks"},
	146: {Abbr: "PTFC", Label: "Punt Fair Catches"},
	147: {Abbr: "PTAVG", Label: "Punt Average"},
	198: {Abbr: "FG60", Label: "FG Made (60+ yards)"},
	200: {Abbr: "FGM60", Label: "FG Missed (60+ yards)"},
	201: {Abbr: "FG50P", Label: "FG Made (50-59 yards)"},
	203: {Abbr: "FGM50P", Label: "FG Missed (50-59 yards)"},
	205: {Abbr: "2PTRET", Label: "2pt Return"},
}
