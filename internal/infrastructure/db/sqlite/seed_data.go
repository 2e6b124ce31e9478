package sqlite

const fundamentalRightsArticle = `FUNDAMENTAL RIGHTS (Articles 12-35)

The Fundamental Rights are the basic human rights enshrined in the Constitution of India which are guaranteed to all citizens. These rights are essential for the development of the personality of every individual and to preserve human dignity.

ARTICLE 14 - RIGHT TO EQUALITY
The State shall not deny to any person equality before the law or the equal protection of the laws within the territory of India.

ARTICLE 15 - PROHIBITION OF DISCRIMINATION
The State shall not discriminate against any citizen on grounds only of religion, race, caste, sex, place of birth or any of them.

ARTICLE 16 - EQUALITY OF OPPORTUNITY IN PUBLIC EMPLOYMENT
There shall be equality of opportunity for all citizens in matters relating to employment or appointment to any office under the State.

ARTICLE 17 - ABOLITION OF UNTOUCHABILITY
"Untouchability" is abolished and its practice in any form is forbidden.

ARTICLE 19 - PROTECTION OF CERTAIN RIGHTS REGARDING FREEDOM OF SPEECH, ETC.
All citizens shall have the right to:
(a) freedom of speech and expression;
(b) assemble peaceably and without arms;
(c) form associations or unions;
(d) move freely throughout the territory of India;
(e) reside and settle in any part of the territory of India;
(f) practice any profession, or to carry on any occupation, trade or business.

ARTICLE 20 - PROTECTION IN RESPECT OF CONVICTION FOR OFFENCES
No person shall be:
(a) convicted of any offence except for violation of a law in force at the time of the commission of the act;
(b) subjected to a penalty greater than that which might have been inflicted under the law in force at the time of the commission of the offence;
(c) compelled to be a witness against himself.

ARTICLE 21 - PROTECTION OF LIFE AND PERSONAL LIBERTY
No person shall be deprived of his life or personal liberty except according to procedure established by law.

ARTICLE 21A - RIGHT TO EDUCATION
The State shall provide free and compulsory education to all children of the age of six to fourteen years.`

const consumerComplaintTemplate = `BEFORE THE DISTRICT CONSUMER DISPUTES REDRESSAL FORUM
AT [DISTRICT NAME]

COMPLAINT UNDER SECTION 35 OF THE CONSUMER PROTECTION ACT, 2019

Complaint No: ___________
Date: ___________

[COMPLAINANT NAME]
S/o [FATHER'S NAME]
R/o [ADDRESS]
[PHONE NUMBER]
[EMAIL]
                                                    ...Complainant

VERSUS

[OPPOSITE PARTY NAME]
[ADDRESS]
                                                    ...Opposite Party

MOST RESPECTFULLY SHOWETH:

1. That the complainant is a consumer within the meaning of Section 2(7) of the Consumer Protection Act, 2019.

2. That on [DATE], the complainant purchased [PRODUCT/SERVICE] from the opposite party for Rs. [AMOUNT].

3. That the product/service was found to be defective/deficient in the following manner:
   [DESCRIBE DEFECT/DEFICIENCY]

4. That the complainant approached the opposite party on [DATE] but no satisfactory response was received.

5. That the opposite party has committed unfair trade practice and deficiency in service.

PRAYER:
It is therefore prayed that this Hon'ble Forum may be pleased to:
a) Direct the opposite party to replace/repair the defective product
b) Direct the opposite party to refund the amount of Rs. [AMOUNT]
c) Award compensation of Rs. [AMOUNT] for mental agony and harassment
d) Award costs of litigation

Place: [PLACE]                                    [COMPLAINANT SIGNATURE]
Date: [DATE]                                      [COMPLAINANT NAME]`

const rentAgreementTemplate = `RENT AGREEMENT

This Rent Agreement is made on [DATE] between:

LANDLORD:
Name: [LANDLORD_NAME]
Address: [LANDLORD_ADDRESS]
Phone: [LANDLORD_PHONE]

TENANT:
Name: [TENANT_NAME]
Address: [TENANT_ADDRESS]
Phone: [TENANT_PHONE]

PROPERTY DETAILS:
Address: [PROPERTY_ADDRESS]
Type: [PROPERTY_TYPE]
Area: [PROPERTY_AREA]

TERMS AND CONDITIONS:

1. RENT: The monthly rent is Rs. [MONTHLY_RENT] payable on or before [DUE_DATE] of each month.

2. SECURITY DEPOSIT: The tenant has paid Rs. [SECURITY_DEPOSIT] as security deposit.

3. DURATION: This agreement is for [DURATION] starting from [START_DATE] to [END_DATE].

4. MAINTENANCE: [MAINTENANCE_TERMS]

5. UTILITIES: [UTILITY_TERMS]

6. TERMINATION: Either party can terminate this agreement by giving [NOTICE_PERIOD] notice.

IN WITNESS WHEREOF, both parties have signed this agreement.

LANDLORD SIGNATURE: _______________    TENANT SIGNATURE: _______________
DATE: _______________              DATE: _______________

WITNESS 1: _______________        WITNESS 2: _______________`

const constitutionNotes = `# Introduction to Indian Constitution

## Historical Background
The Indian Constitution was adopted on 26th November 1949 and came into effect on 26th January 1950.

## Key Features
1. **Longest Written Constitution**: The Indian Constitution is the longest written constitution in the world
2. **Federal Structure**: India follows a federal system with a strong center
3. **Parliamentary System**: India adopted the British Parliamentary system
4. **Fundamental Rights**: Guaranteed rights for all citizens
5. **Directive Principles**: Guidelines for state policy

## Important Articles
- **Article 1**: Name and territory of the Union
- **Article 14**: Right to Equality
- **Article 19**: Freedom of Speech and Expression
- **Article 21**: Right to Life and Personal Liberty
- **Article 32**: Right to Constitutional Remedies

## Important Cases
- **Kesavananda Bharati v. State of Kerala (1973)**: Basic Structure Doctrine
- **Maneka Gandhi v. Union of India (1978)**: Expanded interpretation of Article 21
- **Minerva Mills v. Union of India (1980)**: Limitations on amending power

## Exam Preparation
- Create timeline of constitutional development
- Make comparative charts of different rights
- Practice previous year questions
- Focus on recent constitutional amendments`

const contractLawNotes = `# Contract Law Fundamentals

## Definition of Contract
A contract is an agreement enforceable by law (Section 2(h) of Indian Contract Act, 1872).

## Essential Elements of a Valid Contract
1. **Offer and Acceptance**: Clear proposal and unqualified acceptance
2. **Consideration**: Something in return (quid pro quo)
3. **Capacity to Contract**: Parties must be competent
4. **Free Consent**: Agreement without coercion, fraud, or mistake
5. **Lawful Object**: Purpose must be legal
6. **Legal Formalities**: Writing, registration if required

## Types of Contracts
### Based on Formation
- **Express Contract**: Terms clearly stated
- **Implied Contract**: Terms inferred from conduct
- **Quasi Contract**: Legal fiction to prevent unjust enrichment

### Based on Validity
- **Valid Contract**: All essentials present
- **Void Contract**: No legal effect
- **Voidable Contract**: One party can avoid
- **Unenforceable Contract**: Cannot be enforced in court

## Important Sections
- **Section 10**: What agreements are contracts
- **Section 23**: Lawful consideration and object
- **Section 25**: Agreement without consideration is void
- **Section 56**: Agreement to do impossible act

## Landmark Cases
- **Balfour v. Balfour**: Social agreements not contracts
- **Carlill v. Carbolic Smoke Ball Co.**: Unilateral contracts
- **Hadley v. Baxendale**: Remoteness of damages`

const criminalLawNotes = `# Indian Penal Code (IPC) - Overview

## Introduction
The Indian Penal Code, 1860 is the main criminal code in India. It defines crimes and prescribes punishments.

## Structure of IPC
- **23 Chapters**: Covering different types of offenses
- **511 Sections**: Defining crimes and punishments

## Important Chapters
### Chapter IV: General Exceptions (Sections 76-106)
- **Section 76**: Act done by mistake of fact
- **Section 96-106**: Right of private defense

### Chapter XVI: Offenses Against Human Body (Sections 299-377)
- **Section 299**: Culpable homicide
- **Section 300**: Murder
- **Section 302**: Punishment for murder

### Chapter XVII: Offenses Against Property (Sections 378-462)
- **Section 378**: Theft
- **Section 415**: Cheating
- **Section 420**: Cheating and dishonestly inducing delivery of property

## Key Concepts
1. **Mens Rea**: Guilty mind
2. **Actus Reus**: Guilty act
3. **Intention vs. Knowledge**: Different mental states
4. **Preparation vs. Attempt**: Stages of crime

## Important Distinctions
### Theft vs. Robbery vs. Dacoity
- **Theft**: Dishonest taking of movable property
- **Robbery**: Theft with violence or threat
- **Dacoity**: Robbery by five or more persons

## Recent Amendments
- Bharatiya Nyaya Sanhita (BNS) 2023 - New criminal code
- Changes in definitions and punishments
- New offenses added (cyber crimes, etc.)`

var sampleQuestions = []struct {
	question, answer, category string
}{
	{
		question: "What are my rights as a consumer in India?",
		answer: `**Consumer Rights in India:**

**Under Consumer Protection Act 2019:**
• Right to Safety - Protection from hazardous goods
• Right to Information - Complete product details
• Right to Choose - Access to variety of goods
• Right to be Heard - Voice complaints
• Right to Redressal - Compensation for defects
• Right to Consumer Education

**How to File Complaint:**
1. District Forum (up to ₹1 Crore)
2. State Commission (₹1-10 Crore)
3. National Commission (above ₹10 Crore)

**Helpline:** 1915`,
		category: "consumer",
	},
	{
		question: "How to file an FIR in India?",
		answer: `**Filing FIR (First Information Report):**

**Steps to File FIR:**
1. Visit nearest police station
2. Provide written complaint or oral statement
3. Police must register FIR for cognizable offenses
4. Get FIR copy with number
5. Keep receipt for future reference

**Important Points:**
• FIR can be filed 24/7
• No fee required
• Can be filed online in many states
• Police cannot refuse cognizable offense FIR

**Emergency:** Call 100`,
		category: "criminal",
	},
	{
		question: "What is Section 420 of IPC?",
		answer: `**IPC Section 420 - Cheating and Dishonestly Inducing Delivery of Property:**

**Definition:**
Whoever cheats and thereby dishonestly induces the person deceived to deliver any property or to make, alter or destroy any valuable security shall be punished.

**Punishment:**
• Imprisonment up to 7 years
• Fine or both

**Common Cases:**
• Online fraud
• Investment scams
• Fake documents
• Identity theft

**Legal Remedy:** File FIR, civil suit for recovery`,
		category: "criminal",
	},
	{
		question: "Property registration process in India",
		answer: `**Property Registration Process:**

**Required Documents:**
• Sale deed
• Title documents
• NOC from society/builder
• Property tax receipts
• Identity & address proof
• PAN cards of both parties

**Steps:**
1. Draft sale deed
2. Pay stamp duty
3. Visit Sub-Registrar office
4. Biometric verification
5. Document registration
6. Get registered deed

**Timeline:** 1-7 days`,
		category: "property",
	},
	{
		question: "Divorce procedure in India",
		answer: `**Divorce Procedure in India:**

**Types of Divorce:**
1. **Mutual Consent** (Section 13B Hindu Marriage Act)
2. **Contested Divorce** (Section 13)

**Grounds for Divorce:**
• Cruelty (mental/physical)
• Adultery
• Desertion (1+ years)
• Mental disorder

**Process:**
1. File petition in family court
2. Serve notice to spouse
3. Court proceedings
4. Evidence and arguments
5. Final decree

**Timeline:** 6 months to 2+ years`,
		category: "family",
	},
	{
		question: "What are fundamental rights under Indian Constitution?",
		answer: `**Fundamental Rights (Articles 12-35):**

**Six Fundamental Rights:**

**1. Right to Equality (Articles 14-18)**
**2. Right to Freedom (Articles 19-22)**
**3. Right against Exploitation (Articles 23-24)**
**4. Right to Freedom of Religion (Articles 25-28)**
**5. Cultural and Educational Rights (Articles 29-30)**
**6. Right to Constitutional Remedies (Article 32)**
• Writs: Habeas Corpus, Mandamus, Prohibition, Certiorari, Quo-warranto`,
		category: "constitutional",
	},
	{
		question: "What is bail and how to get it?",
		answer: `**Bail in Indian Criminal Law:**

**Types of Bail:**
1. **Regular Bail** - Applied in Magistrate/Sessions Court
2. **Interim Bail** - Temporary bail
3. **Anticipatory Bail** - Before arrest (Section 438 CrPC)
4. **Default Bail** - Automatic after 60/90 days

**Bail Application Process:**
1. File bail application
2. Attach supporting documents
3. Court hearing
4. Furnish bail bond
5. Release from custody

**Legal Maxim:** 'Bail is rule, jail is exception'`,
		category: "criminal",
	},
	{
		question: "Domestic violence laws in India",
		answer: `**Protection of Women from Domestic Violence Act 2005:**

**What Constitutes Domestic Violence:**
• Physical abuse
• Sexual abuse
• Verbal and emotional abuse
• Economic abuse

**Legal Remedies:**
1. **Protection Order** - Stop violence
2. **Residence Order** - Right to stay
3. **Monetary Relief** - Maintenance, compensation
4. **Custody Order** - Child custody

**Support Services:**
• Women Helpline: 1091
• Domestic Violence Helpline: 181

**Emergency:** Call 100 or 1091`,
		category: "family",
	},
}

var sampleAdvocates = []struct {
	username, email, fullName, phone, address string
	barCouncilID                              string
	yearsExperience                           int
	specializations, practiceAreas, languages string
	courtLocations                            string
	consultationFee, hourlyRate, rating       float64
	totalCases, casesWon                      int
	bio, officeAddress, consultationModes     string
}{
	{
		username: "ananya_krishnan", email: "ananya.krishnan@legalease.com",
		fullName: "Adv. Ananya Krishnan", phone: "+91 98765-43210",
		address: "Supreme Court Bar Association, New Delhi", barCouncilID: "D/789/2009",
		yearsExperience: 14, specializations: "Criminal Law, Cyber Crime, White Collar Crime",
		practiceAreas: "Criminal Defense, Cyber Crime Investigation, Economic Offenses",
		languages:     "Hindi, English, Tamil", courtLocations: "Supreme Court of India, Delhi High Court",
		consultationFee: 3000, hourlyRate: 5500, rating: 4.9, totalCases: 312, casesWon: 267,
		bio:           "Leading criminal law expert specializing in cyber crimes and white-collar offenses.",
		officeAddress: "Chamber 12, Supreme Court Bar Association, New Delhi",
		consultationModes: "In-person, Video Call, Phone",
	},
	{
		username: "rohit_malhotra", email: "rohit.malhotra@legalease.com",
		fullName: "Adv. Rohit Malhotra", phone: "+91 98765-43211",
		address: "Bombay High Court, Mumbai", barCouncilID: "M/892/2012",
		yearsExperience: 11, specializations: "Corporate Law, Mergers & Acquisitions, Securities Law",
		practiceAreas: "Corporate Compliance, M&A Transactions, IPO Advisory",
		languages:     "Hindi, English, Marathi", courtLocations: "Bombay High Court, NCLT Mumbai",
		consultationFee: 4500, hourlyRate: 8000, rating: 4.7, totalCases: 156, casesWon: 142,
		bio:           "Corporate law expert with extensive experience in mergers, acquisitions, and securities regulations.",
		officeAddress: "Chamber 8, Bombay High Court, Mumbai",
		consultationModes: "In-person, Video Call, Phone",
	},
	{
		username: "kavitha_nair", email: "kavitha.nair@legalease.com",
		fullName: "Adv. Kavitha Nair", phone: "+91 98765-43212",
		address: "Kerala High Court, Kochi", barCouncilID: "KL/345/2014",
		yearsExperience: 9, specializations: "Family Law, Women Rights, Child Custody",
		practiceAreas: "Matrimonial Disputes, Domestic Violence, Adoption",
		languages:     "Hindi, English, Malayalam, Tamil", courtLocations: "Kerala High Court, Family Courts Kochi",
		consultationFee: 2000, hourlyRate: 3800, rating: 4.8, totalCases: 203, casesWon: 178,
		bio:           "Compassionate family law advocate specializing in women rights and child welfare cases.",
		officeAddress: "Chamber 15, Kerala High Court, Kochi",
		consultationModes: "In-person, Video Call",
	},
	{
		username: "arjun_patel", email: "arjun.patel@legalease.com",
		fullName: "Adv. Arjun Patel", phone: "+91 98765-43213",
		address: "Gujarat High Court, Ahmedabad", barCouncilID: "GJ/567/2015",
		yearsExperience: 8, specializations: "Consumer Law, Banking Law, Insurance Disputes",
		practiceAreas: "Consumer Complaints, Banking Disputes, Insurance Claims",
		languages:     "Hindi, English, Gujarati", courtLocations: "Gujarat High Court, Consumer Forums",
		consultationFee: 1600, hourlyRate: 3000, rating: 4.6, totalCases: 167, casesWon: 145,
		bio:           "Consumer rights champion with expertise in banking and insurance law disputes.",
		officeAddress: "Chamber 22, Gujarat High Court, Ahmedabad",
		consultationModes: "In-person, Video Call, Phone",
	},
	{
		username: "meera_bansal", email: "meera.bansal@legalease.com",
		fullName: "Adv. Meera Bansal", phone: "+91 98765-43214",
		address: "Punjab & Haryana High Court, Chandigarh", barCouncilID: "PH/234/2016",
		yearsExperience: 7, specializations: "Property Law, Real Estate, Agricultural Law",
		practiceAreas: "Property Disputes, Real Estate Transactions, Land Records",
		languages:     "Hindi, English, Punjabi", courtLocations: "Punjab & Haryana High Court, Revenue Courts",
		consultationFee: 1800, hourlyRate: 3200, rating: 4.5, totalCases: 134, casesWon: 118,
		bio:           "Property law specialist with deep knowledge of agricultural and real estate matters.",
		officeAddress: "Chamber 30, Punjab & Haryana High Court, Chandigarh",
		consultationModes: "In-person, Phone",
	},
	{
		username: "deepak_agarwal", email: "deepak.agarwal@legalease.com",
		fullName: "Adv. Deepak Agarwal", phone: "+91 98765-43215",
		address: "Allahabad High Court, Prayagraj", barCouncilID: "UP/678/2017",
		yearsExperience: 6, specializations: "Constitutional Law, Public Interest Litigation, Human Rights",
		practiceAreas: "PIL, Writ Petitions, Human Rights Cases",
		languages:     "Hindi, English, Urdu", courtLocations: "Allahabad High Court, Supreme Court",
		consultationFee: 2200, hourlyRate: 4000, rating: 4.7, totalCases: 89, casesWon: 76,
		bio:           "Constitutional law expert fighting for public interest and human rights causes.",
		officeAddress: "Chamber 18, Allahabad High Court, Prayagraj",
		consultationModes: "In-person, Video Call, Phone",
	},
	{
		username: "shalini_reddy", email: "shalini.reddy@legalease.com",
		fullName: "Adv. Shalini Reddy", phone: "+91 98765-43216",
		address: "Telangana High Court, Hyderabad", barCouncilID: "TS/890/2018",
		yearsExperience: 5, specializations: "Intellectual Property, Technology Law, Startup Legal",
		practiceAreas: "Patent Law, Trademark, Copyright, Tech Contracts",
		languages:     "Hindi, English, Telugu", courtLocations: "Telangana High Court, IP Tribunals",
		consultationFee: 2800, hourlyRate: 5000, rating: 4.4, totalCases: 78, casesWon: 67,
		bio:           "Young and dynamic IP lawyer helping startups and tech companies with legal compliance.",
		officeAddress: "Chamber 25, Telangana High Court, Hyderabad",
		consultationModes: "In-person, Video Call, Phone",
	},
}
