package domain

import "github.com/shopspring/decimal"

// DemoTransactions returns a fresh copy of the October 2023 demo dataset used
// whenever no real ingestion path is available.
func DemoTransactions() []Transaction {
	return []Transaction{
		demoTx("t1", "2023-10-01", "Tech Corp Salary", "Tech Corp", "5200.00", Income, Credit),
		demoTx("t2", "2023-10-02", "Downtown Apartments", "Downtown Apts", "1800.00", Housing, Debit),
		demoTx("t3", "2023-10-03", "Whole Foods Market", "Whole Foods", "145.20", FoodAndDining, Debit),
		demoTx("t4", "2023-10-04", "Uber Ride", "Uber", "24.50", Transportation, Debit),
		demoTx("t5", "2023-10-05", "Netflix Subscription", "Netflix", "15.99", Entertainment, Debit),
		demoTx("t6", "2023-10-05", "Spotify Premium", "Spotify", "11.99", Entertainment, Debit),
		demoTx("t7", "2023-10-07", "Local Coffee Shop", "Bean There", "6.50", FoodAndDining, Debit),
		demoTx("t8", "2023-10-08", "Amazon Purchase", "Amazon", "89.99", Shopping, Debit),
		demoTx("t9", "2023-10-10", "Electric Bill", "City Power", "120.00", Utilities, Debit),
		demoTx("t10", "2023-10-12", "Sushi Dinner", "Sushi Place", "85.00", FoodAndDining, Debit),
		demoTx("t11", "2023-10-15", "Uber Ride", "Uber", "32.00", Transportation, Debit),
		demoTx("t12", "2023-10-18", "Gym Membership", "FitGym", "45.00", Health, Debit),
		demoTx("t13", "2023-10-20", "Trader Joes", "Trader Joes", "95.40", FoodAndDining, Debit),
		demoTx("t14", "2023-10-22", "Cinema Tickets", "AMC", "30.00", Entertainment, Debit),
		demoTx("t15", "2023-10-25", "Shell Gas Station", "Shell", "55.00", Transportation, Debit),
		demoTx("t16", "2023-10-28", "Verizon Wireless", "Verizon", "85.00", Utilities, Debit),
		demoTx("t17", "2023-10-29", "Nike Store", "Nike", "120.00", Shopping, Debit),
		demoTx("t18", "2023-10-30", "Starbucks", "Starbucks", "8.50", FoodAndDining, Debit),
	}
}

func demoTx(id, date, description, merchant, amount string, category Category, txType TransactionType) Transaction {
	return Transaction{
		ID:          id,
		Date:        date,
		Description: description,
		Merchant:    merchant,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Type:        txType,
	}
}
