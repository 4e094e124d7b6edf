package report

import (
	"cec-reporter/internal/geometry"
	"cec-reporter/internal/journal"
)

// Each category has a parse step that turns a raw event into a validated
// view, reporting false for "not this category", and a build step that
// cannot fail.

var guardianFactions = []any{"$faction_Thargoid;", "$faction_Guardian;"}

type factionKill struct {
	reward   string
	awarding string
	victim   string
}

func parseFactionKill(ev journal.Event) (factionKill, bool) {
	if ev.Name() != "FactionKillBond" || !ev.FieldIn("VictimFaction", guardianFactions...) || !ev.Has("Reward") {
		return factionKill{}, false
	}
	awarding, ok := ev.String("AwardingFaction")
	if !ok {
		return factionKill{}, false
	}
	victim, _ := ev.String("VictimFaction")
	return factionKill{reward: ev.FormatField("Reward"), awarding: awarding, victim: victim}, true
}

func buildFactionKill(rc Context, v factionKill) Request {
	beta := "N"
	if rc.Beta {
		beta = "Y"
	}
	b := newRequest(CategoryFactionKill, methodGet, factionKillForm, rc).
		add(fkCommander, rc.Commander).
		add(fkBeta, beta).
		add(fkSystem, rc.System)
	if rc.Station != "" {
		b.add(fkStation, rc.Station)
	}
	return b.add(fkReward, v.reward).
		add(fkAwardingFaction, v.awarding).
		add(fkVictimFaction, v.victim).
		build()
}

type codexEntry struct {
	entryID       string
	name          string
	nameLocalised string
	subCategory   string
	subCatLocal   string
	category      string
	categoryLocal string
	region        string
	regionLocal   string
	systemAddress string
	voucher       string
	hasVoucher    bool
}

func parseCodex(ev journal.Event) (codexEntry, bool) {
	if ev.Name() != "CodexEntry" || !ev.Has("EntryID") || !ev.Has("SystemAddress") {
		return codexEntry{}, false
	}
	v := codexEntry{
		entryID:       ev.FormatField("EntryID"),
		systemAddress: ev.FormatField("SystemAddress"),
	}
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"Name", &v.name},
		{"Name_Localised", &v.nameLocalised},
		{"SubCategory", &v.subCategory},
		{"SubCategory_Localised", &v.subCatLocal},
		{"Category", &v.category},
		{"Category_Localised", &v.categoryLocal},
		{"Region", &v.region},
		{"Region_Localised", &v.regionLocal},
	} {
		s, ok := ev.String(f.name)
		if !ok {
			return codexEntry{}, false
		}
		*f.dst = s
	}
	if ev.Has("VoucherAmount") {
		v.voucher = ev.FormatField("VoucherAmount")
		v.hasVoucher = true
	}
	return v, true
}

func buildCodex(rc Context, s Surface, v codexEntry) Request {
	b := newRequest(CategoryCodex, methodGet, codexForm, rc).
		add(cxCommander, rc.Commander).
		add(cxSystem, rc.System).
		add(cxX, rc.coord('x')).
		add(cxY, rc.coord('y')).
		add(cxZ, rc.coord('z'))
	if s.Body != "" {
		b.add(cxBody, s.Body)
	}
	// Longitude is only meaningful together with latitude.
	if s.Latitude != nil {
		b.add(cxLatitude, journal.Format(*s.Latitude))
		if s.Longitude != nil {
			b.add(cxLongitude, journal.Format(*s.Longitude))
		}
	}
	b.add(cxEntryID, v.entryID).
		add(cxName, v.name).
		add(cxNameLocalised, v.nameLocalised).
		add(cxSubCategory, v.subCategory).
		add(cxSubCategoryLocal, v.subCatLocal).
		add(cxCategory, v.category).
		add(cxCategoryLocalised, v.categoryLocal).
		add(cxRegion, v.region).
		add(cxRegionLocalised, v.regionLocal).
		add(cxSystemAddress, v.systemAddress)
	if v.hasVoucher {
		b.add(cxVoucherAmount, v.voucher)
	}
	return b.build()
}

type axZone struct {
	systemAddress string
}

func parseAXZone(ev journal.Event) (axZone, bool) {
	if ev.Name() != "FSSSignalDiscovered" || !ev.FieldEquals("SignalName", "$Warzone_TG;") {
		return axZone{}, false
	}
	// An absent address is submitted as journal.None.
	return axZone{systemAddress: ev.FormatField("SystemAddress")}, true
}

func buildAXZone(rc Context, v axZone) Request {
	return newRequest(CategoryAXZone, methodGet, axZoneForm, rc).
		add(axCommander, rc.Commander).
		add(axSystem, rc.System).
		add(axX, rc.coord('x')).
		add(axY, rc.coord('y')).
		add(axZ, rc.coord('z')).
		add(axSystemAddress, v.systemAddress).
		build()
}

// statistics sub-fields in submission order
var tgFields = []struct {
	name string
	key  string
}{
	{"TG_ENCOUNTER_WAKES", tgWakes},
	{"TG_ENCOUNTER_IMPRINT", tgImprint},
	{"TG_ENCOUNTER_TOTAL", tgTotal},
	{"TG_ENCOUNTER_TOTAL_LAST_TIMESTAMP", tgLastTimestamp},
	{"TG_SCOUT_COUNT", tgScoutCount},
	{"TG_ENCOUNTER_TOTAL_LAST_SYSTEM", tgLastSystem},
}

type statistics struct {
	encounters journal.Event
	snapshot   StatsSnapshot
}

func parseStatistics(ev journal.Event) (statistics, bool) {
	if ev.Name() != "Statistics" {
		return statistics{}, false
	}
	tg, _ := ev.Object("TG_ENCOUNTERS")
	return statistics{encounters: tg, snapshot: snapshotOf(tg)}, true
}

func buildStatistics(rc Context, v statistics) Request {
	b := newRequest(CategoryStatistics, methodGet, statisticsForm, rc).
		add(tgCommander, rc.Commander)
	// null counts as absent, matching the snapshot comparison
	for _, f := range tgFields {
		if val, ok := v.encounters.Get(f.name); ok && val != nil {
			b.add(f.key, journal.Format(val))
		}
	}
	return b.build()
}

const nonHumanSignal = "$USS_Type_NonHuman;"

type nhss struct {
	threat      string
	source      string // "FSS" or "Drop"
	coordinates geometry.Point
}

func parseNHSS(ev journal.Event, rc Context) (nhss, bool) {
	if !ev.FieldEquals("USSType", nonHumanSignal) {
		return nhss{}, false
	}
	var field, source string
	switch ev.Name() {
	case "FSSSignalDiscovered":
		field, source = "ThreatLevel", "FSS"
	case "USSDrop":
		field, source = "USSThreat", "Drop"
	default:
		return nhss{}, false
	}
	raw, ok := ev.Get(field)
	if !ok || raw == nil || rc.Coords == nil {
		return nhss{}, false
	}
	return nhss{threat: discriminant(raw), source: source, coordinates: *rc.Coords}, true
}

func buildNHSS(rc Context, v nhss) []Request {
	detail := newRequest(CategoryNHSS, methodPost, nhssForm, rc).
		add(nhCommander, rc.Commander).
		add(nhSystem, rc.System).
		add(nhX, journal.Format(v.coordinates.X)).
		add(nhY, journal.Format(v.coordinates.Y)).
		add(nhZ, journal.Format(v.coordinates.Z)).
		add(nhDistSol, journal.Format(geometry.DistanceToSol(v.coordinates))).
		add(nhDistMerope, journal.Format(geometry.DistanceToMerope(v.coordinates))).
		add(nhType, nonHumanSignal).
		add(nhTypeName, "Non-Human signal source").
		add(nhThreatLevel, v.threat).
		build()
	summary := newRequest(CategoryNHSSSummary, methodPost, nhssSummaryForm, rc).
		add(nhsSystem, rc.System).
		add(nhsDescription, "Non Human Signal").
		add(nhsThreatLevel, v.threat).
		add(nhsCommander, rc.Commander).
		build()
	return []Request{detail, summary}
}

// discriminant normalises a threat level so that 3, 3.0 and "3" from
// different event kinds share one dedup key.
func discriminant(v any) string {
	if f, ok := journal.AsNumber(v); ok {
		return journal.FormatNumber(f)
	}
	return journal.Format(v)
}

type shipScan struct {
	ship           string
	pilotName      string
	pilotLocalised string
	hasLocalised   bool
	faction        string
	rank           string
}

func parseShipScan(ev journal.Event) (shipScan, bool) {
	if ev.Name() != "ShipTargeted" || !ev.FieldEquals("TargetLocked", true) || !ev.FieldEquals("ScanStage", 3) {
		return shipScan{}, false
	}
	var v shipScan
	var ok bool
	if v.ship, ok = ev.String("Ship"); !ok {
		return shipScan{}, false
	}
	if v.pilotName, ok = ev.String("PilotName"); !ok {
		return shipScan{}, false
	}
	if v.faction, ok = ev.String("Faction"); !ok {
		return shipScan{}, false
	}
	if v.rank, ok = ev.String("PilotRank"); !ok {
		return shipScan{}, false
	}
	v.pilotLocalised, v.hasLocalised = ev.String("PilotName_Localised")
	return v, true
}

func buildShipScan(rc Context, v shipScan) Request {
	b := newRequest(CategoryShipScan, methodGet, shipScanForm, rc).
		add(ssCommander, rc.Commander).
		add(ssSystem, rc.System).
		add(ssShip, v.ship).
		add(ssPilotName, v.pilotName)
	if v.hasLocalised {
		b.add(ssPilotNameLocal, v.pilotLocalised)
	}
	return b.add(ssFaction, v.faction).
		add(ssPilotRank, v.rank).
		build()
}

var activityEvents = map[string]bool{
	"MissionCompleted":         true,
	"SellExplorationData":      true,
	"MultiSellExplorationData": true,
	"RedeemVoucher":            true,
}

func parseActivity(ev journal.Event) (journal.Event, bool) {
	if !activityEvents[ev.Name()] {
		return nil, false
	}
	return ev, true
}

func buildActivity(rc Context, ev journal.Event) Request {
	return newRequest(CategoryActivity, methodGet, activityForm, rc).
		add(acCommander, rc.Commander).
		add(acEvent, ev.Name()).
		add(acRaw, ev.Text()).
		build()
}
