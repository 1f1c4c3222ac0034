package useragent

// engineRules is the rendering engine cascade. WebKit strings advertise
// "KHTML, like Gecko" and IE 11 says "like Gecko", so Gecko goes last.
// MSIE implies Trident even before the Trident token existed. IE Mobile 11
// appends "AppleWebKit" for compatibility, so IEMobile is checked first.
var engineRules = cascade{
	newRule(EngineEdgeHTML, `\bedge/`, 0),
	newRule(EngineTrident, `\biemobile\b`, 0),
	newRule(EngineWebKit, `webkit\b`, 0),
	newRule(EngineKHTML, `\bkhtml\b`, 0),
	newRule(EnginePresto, `\bpresto\b`, 0),
	newRule(EngineTrident, `\b(?:trident|msie)\b`, 0),
	newRule(EngineGecko, `\bgecko\b`, 0),
}
