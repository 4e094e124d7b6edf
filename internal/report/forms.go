package report

// Form addresses and field identifiers. The remote forms reject anything
// that does not match these exactly.
const (
	factionKillForm = "https://docs.google.com/forms/d/e/1FAIpQLSdA-iypOHxi5L4iaINr57hVJYWaZj9d-rmx_rpLJ8mwPrlccQ/formResponse?usp=pp_url"
	codexForm       = "https://docs.google.com/forms/d/e/1FAIpQLSfw5LtkhGRqQIXA9wG_-ByfAJ7R1DUrs7rGJ15CMr7mSP0VFQ/formResponse?usp=pp_url"
	axZoneForm      = "https://docs.google.com/forms/d/18u8QGujh9G-yBLhH8KBsBzn1gJp5j9PrS_hcIG6WWgw/formResponse?usp=pp_url"
	statisticsForm  = "https://docs.google.com/forms/d/e/1FAIpQLScF_URtGFf1-CyMNr4iuTHkxyxOMWcrZ2ZycrKAiej0eC-hTA/formResponse?usp=pp_url"
	nhssForm        = "https://docs.google.com/forms/d/e/1FAIpQLScVk2LW6EkIW3hL8EhuLVI5j7jQ1ZmsYCLRxgCZlpHiN8JdcA/formResponse?usp=pp_url"
	nhssSummaryForm = "https://docs.google.com/forms/d/e/1FAIpQLSeOBbUTiD64FyyzkIeZfO5UMfqeuU2lsRf3_Ulh7APddd91JA/formResponse?usp=pp_url"
	shipScanForm    = "https://docs.google.com/forms/d/e/1FAIpQLScdc9kTaPUG-e7Hi-Qi1BrAvFxHUefaaHlAUTSTrsZV586Wgw/formResponse?usp=pp_url"
	activityForm    = "https://docs.google.com/forms/d/e/1FAIpQLSd1HNysgZRf4p0_I_hHxbwWz4N8EFEWtjsVaK9wR3RB66kiTQ/formResponse?usp=pp_url"
)

// faction kill bond
const (
	fkCommander       = "1574172588"
	fkBeta            = "1534486210"
	fkSystem          = "451904934"
	fkStation         = "666865209"
	fkReward          = "310344870"
	fkAwardingFaction = "706329985"
	fkVictimFaction   = "78713015"
)

// codex entry
const (
	cxCommander         = "225040908"
	cxSystem            = "1726574817"
	cxX                 = "763596647"
	cxY                 = "1058472073"
	cxZ                 = "2082187150"
	cxBody              = "1996921251"
	cxLatitude          = "1610549351"
	cxLongitude         = "594657555"
	cxEntryID           = "684427446"
	cxName              = "1284748079"
	cxNameLocalised     = "763283762"
	cxSubCategory       = "1357457545"
	cxSubCategoryLocal  = "1137878415"
	cxCategory          = "145132650"
	cxCategoryLocalised = "1517395872"
	cxRegion            = "744185618"
	cxRegionLocalised   = "873911354"
	cxSystemAddress     = "263943315"
	cxVoucherAmount     = "246809407"
)

// AX conflict zone
const (
	axCommander     = "736793268"
	axSystem        = "1932953897"
	axX             = "1428557264"
	axY             = "271351956"
	axZ             = "1814511958"
	axSystemAddress = "154660486"
)

// Thargoid encounter statistics
const (
	tgCommander     = "1391154225"
	tgWakes         = "1976561224"
	tgImprint       = "538722824"
	tgTotal         = "779348244"
	tgLastTimestamp = "1664525188"
	tgScoutCount    = "674074529"
	tgLastSystem    = "2124154577"
)

// non-human signal source
const (
	nhCommander   = "106150081"
	nhSystem      = "582675236"
	nhX           = "158339236"
	nhY           = "608639155"
	nhZ           = "1737639503"
	nhDistSol     = "1398738264"
	nhDistMerope  = "922392846"
	nhType        = "218543806"
	nhTypeName    = "455413428"
	nhThreatLevel = "790504343"

	nhsSystem      = "306505776"
	nhsDescription = "1559250350"
	nhsThreatLevel = "1031843658"
	nhsCommander   = "1519036101"
)

// ship scan
const (
	ssCommander      = "1346797392"
	ssSystem         = "674028188"
	ssShip           = "577969913"
	ssPilotName      = "1641514781"
	ssPilotNameLocal = "76739667"
	ssFaction        = "2138128921"
	ssPilotRank      = "1100547048"
)

// mission, exploration and voucher activity
const (
	acCommander = "2038615400"
	acEvent     = "1807008459"
	acRaw       = "569295685"
)
