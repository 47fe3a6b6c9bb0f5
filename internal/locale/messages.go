package locale

// Compiled-in message bundles. The backend owns no localization storage, so
// these are the only strings the screens need.
var messages = map[Lang]map[string]string{
	LangEnglish: {
		"app.title":            "Wateen",
		"splash.loading":       "Loading...",
		"splash.toggle":        "العربية",
		"login.title":          "Login",
		"login.email":          "Email",
		"login.password":       "Password",
		"login.submit":         "Login",
		"login.submitting":     "Logging in...",
		"login.signup":         "Don't have an account? Sign up",
		"signup.title":         "Sign Up",
		"signup.fullname":      "Full Name",
		"signup.submit":        "Sign Up",
		"signup.submitting":    "Signing up...",
		"signup.login":         "Already have an account? Login",
		"onboarding.title":     "Tell us about yourself",
		"onboarding.dob":       "Date of Birth (YYYY-MM-DD)",
		"onboarding.gender":    "Gender",
		"onboarding.cond":      "Chronic Conditions",
		"onboarding.goals":     "Health Goals",
		"onboarding.submit":    "Continue",
		"med.title":            "Add Medication",
		"med.name":             "Medication Name",
		"med.dosage":           "Dosage",
		"med.formtype":         "Form Type",
		"med.scheduletype":     "Schedule Type",
		"med.fixedtimes":       "Fixed Times (HH:MM)",
		"med.everyxhours":      "Every X Hours",
		"med.specificdays":     "Specific Days",
		"med.prn":              "PRN (as needed)",
		"med.startdate":        "Start Date (YYYY-MM-DD)",
		"med.enddate":          "End Date (optional)",
		"med.refillcount":      "Refill Count (optional)",
		"med.startquantity":    "Number of Pills at Start",
		"med.dosequantity":     "Pills per Dose",
		"med.timesperday":      "Times per Day",
		"med.notes":            "Notes / Instructions",
		"med.reminderon":       "Enable Reminder",
		"med.remindertime":     "Reminder Time (HH:MM)",
		"med.reminderrepeat":   "Reminder Repeat",
		"med.submit":           "Add Medication",
		"med.submitting":       "Adding...",
		"dash.title":           "Dashboard",
		"dash.welcome":         "Welcome",
		"dash.meds":            "Your medications",
		"dash.nomeds":          "No medications yet.",
		"dash.refill":          "You'll run out of %s in %d days.",
		"dash.refilled":        "Mark as Refilled",
		"dash.snooze":          "Snooze Reminder",
		"dash.snoozed":         "Reminder snoozed for 1 day.",
		"dash.sideeffect":      "Log Side Effect",
		"dash.addmed":          "Add Medication",
		"dash.logout":          "Logout",
		"dash.toggle":          "العربية",
		"sideeffect.title":     "Log Side Effect for %s",
		"sideeffect.symptom":   "Symptom",
		"sideeffect.severity":  "Severity (1-10)",
		"sideeffect.notes":     "Notes (optional)",
		"sideeffect.image":     "Image path (optional)",
		"sideeffect.submit":    "Submit",
		"error.generic":        "Something went wrong. Please try again.",
	},
	LangArabic: {
		"app.title":            "وتين",
		"splash.loading":       "جار التحميل...",
		"splash.toggle":        "English",
		"login.title":          "تسجيل الدخول",
		"login.email":          "البريد الإلكتروني",
		"login.password":       "كلمة المرور",
		"login.submit":         "دخول",
		"login.submitting":     "جارٍ تسجيل الدخول...",
		"login.signup":         "ليس لديك حساب؟ سجل الآن",
		"signup.title":         "إنشاء حساب",
		"signup.fullname":      "الاسم الكامل",
		"signup.submit":        "تسجيل",
		"signup.submitting":    "جارٍ التسجيل...",
		"signup.login":         "لديك حساب؟ تسجيل الدخول",
		"onboarding.title":     "أخبرنا عنك",
		"onboarding.dob":       "تاريخ الميلاد (YYYY-MM-DD)",
		"onboarding.gender":    "الجنس",
		"onboarding.cond":      "الأمراض المزمنة",
		"onboarding.goals":     "الأهداف الصحية",
		"onboarding.submit":    "متابعة",
		"med.title":            "إضافة دواء",
		"med.name":             "اسم الدواء",
		"med.dosage":           "الجرعة",
		"med.submit":           "إضافة الدواء",
		"med.submitting":       "جارٍ الإضافة...",
		"dash.title":           "الرئيسية",
		"dash.welcome":         "مرحباً",
		"dash.meds":            "أدويتك",
		"dash.nomeds":          "لا توجد أدوية بعد.",
		"dash.refilled":        "تم صرف الدواء",
		"dash.snooze":          "تأجيل التذكير",
		"dash.snoozed":         "تم تأجيل التذكير ليوم واحد.",
		"dash.sideeffect":      "تسجيل عرض جانبي",
		"dash.addmed":          "إضافة دواء",
		"dash.logout":          "تسجيل الخروج",
		"dash.toggle":          "English",
		"error.generic":        "حدث خطأ ما. حاول مرة أخرى.",
	},
}
