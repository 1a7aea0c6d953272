package handlers

import "law_office_site_go/models"

// SEO metadata for every routable page, keyed by route path and language.
// Every route carries an "he" entry; "en" falls back to "he" when absent.
var routeMeta = map[string]map[string]models.RouteMeta{
	"/practice/criminal-lawyer": {
		"he": {
			Title:       "עורך דין פלילי | משרד עורכי דין דורון שלו",
			Description: "ייצוג משפטי פלילי מקצועי: חקירות משטרה, מעצרים, כתבי אישום וערעורים. ליווי אישי וזמינות מלאה לאורך כל ההליך הפלילי.",
		},
		"en": {
			Title:       "Criminal Defense Lawyer | Doron Shalev Law Office",
			Description: "Professional criminal defense representation: police interrogations, arrests, indictments and appeals. Personal guidance through every stage of the criminal process.",
		},
	},
	"/practice/traffic-lawyer": {
		"he": {
			Title:       "עורך דין תעבורה | משרד עורכי דין דורון שלו",
			Description: "ייצוג בעבירות תעבורה: נהיגה בשכרות, פסילת רישיון, תאונות דרכים ודוחות מהירות. ניסיון רב בבתי המשפט לתעבורה בכל הארץ.",
		},
		"en": {
			Title:       "Traffic Lawyer | Doron Shalev Law Office",
			Description: "Representation in traffic offenses: DUI, license revocation, road accidents and speeding tickets. Extensive experience in traffic courts nationwide.",
		},
	},
	"/practice/administrative-lawyer": {
		"he": {
			Title:       "עורך דין מנהלי | משרד עורכי דין דורון שלו",
			Description: "ייצוג מול רשויות המדינה: עתירות מנהליות, רישוי עסקים, מכרזים והליכי שימוע. ליווי משפטי מול משרדי ממשלה ורשויות מקומיות.",
		},
		"en": {
			Title:       "Administrative Lawyer | Doron Shalev Law Office",
			Description: "Representation before state authorities: administrative petitions, business licensing, tenders and hearing proceedings. Legal guidance before government ministries and municipalities.",
		},
	},
	"/practice/employment-lawyer": {
		"he": {
			Title:       "עורך דין דיני עבודה | משרד עורכי דין דורון שלו",
			Description: "ייצוג עובדים ומעסיקים: פיטורים שלא כדין, זכויות עובדים, הסכמי עבודה ותביעות בבית הדין לעבודה.",
		},
		"en": {
			Title:       "Employment Lawyer | Doron Shalev Law Office",
			Description: "Representation for employees and employers: wrongful termination, employee rights, employment agreements and labor court claims.",
		},
	},
	"/practice/accessibility-lawyer": {
		"he": {
			Title:       "עורך דין נגישות | משרד עורכי דין דורון שלו",
			Description: "אכיפת זכויות נגישות לאנשים עם מוגבלות: תביעות נגישות, התאמות במקומות עבודה וייעוץ לעסקים בחובות הנגישות שבחוק.",
		},
		"en": {
			Title:       "Accessibility Rights Lawyer | Doron Shalev Law Office",
			Description: "Enforcing accessibility rights for people with disabilities: accessibility claims, workplace accommodations and compliance counseling for businesses.",
		},
	},
	"/privacy": {
		"he": {
			Title:       "מדיניות פרטיות | משרד עורכי דין דורון שלו",
			Description: "מדיניות הפרטיות של האתר: איזה מידע נאסף, כיצד הוא נשמר ומהן זכויותיכם על פי חוק הגנת הפרטיות.",
		},
		"en": {
			Title:       "Privacy Policy | Doron Shalev Law Office",
			Description: "The website privacy policy: what information is collected, how it is stored and your rights under privacy law.",
		},
	},
	"/terms": {
		"he": {
			Title:       "תנאי שימוש | משרד עורכי דין דורון שלו",
			Description: "תנאי השימוש באתר המשרד: גבולות השימוש בתכנים, היעדר ייעוץ משפטי באתר והגבלת אחריות.",
		},
		"en": {
			Title:       "Terms of Use | Doron Shalev Law Office",
			Description: "The website terms of use: limits on content use, no legal advice is provided on the site, and limitation of liability.",
		},
	},
	"/cookies": {
		"he": {
			Title:       "מדיניות עוגיות | משרד עורכי דין דורון שלו",
			Description: "מידע על השימוש בקובצי עוגיות באתר, סוגי העוגיות ואפשרויות הניהול שלהן בדפדפן.",
		},
	},
	"/accessibility-statement": {
		"he": {
			Title:       "הצהרת נגישות | משרד עורכי דין דורון שלו",
			Description: "הצהרת הנגישות של האתר: רמת ההתאמה לתקן, הסדרי הנגישות הקיימים ודרכי פנייה לרכז הנגישות.",
		},
		"en": {
			Title:       "Accessibility Statement | Doron Shalev Law Office",
			Description: "The website accessibility statement: conformance level, existing accessibility arrangements and how to reach the accessibility coordinator.",
		},
	},
}

// PageRoutes lists every route served through metadata injection, in the order
// they appear in the sitemap.
var PageRoutes = []string{
	"/practice/criminal-lawyer",
	"/practice/traffic-lawyer",
	"/practice/administrative-lawyer",
	"/practice/employment-lawyer",
	"/practice/accessibility-lawyer",
	"/privacy",
	"/terms",
	"/cookies",
	"/accessibility-statement",
}

// GetRouteMeta returns the metadata for a route and language, falling back to
// the Hebrew entry when no localized variant exists. The second return value is
// false only for routes missing from the table entirely, which is a
// configuration error rather than a request-time condition.
func GetRouteMeta(route, lang string) (models.RouteMeta, bool) {
	langs, ok := routeMeta[route]
	if !ok {
		return models.RouteMeta{}, false
	}
	if meta, ok := langs[lang]; ok {
		return meta, true
	}
	meta, ok := langs["he"]
	return meta, ok
}
