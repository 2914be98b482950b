package ingest

type seedComment struct {
	text   string
	rating float64
	date   string
}

// seedCorpus is the fixed demo corpus the scraper samples from in place of
// live review extraction.
var seedCorpus = []seedComment{
	{"This kitchen scale is very accurate and easy to use. The digital display is clear and the batteries last a long time.", 5.0, "June 15, 2023"},
	{"Good product for the price. It does what it's supposed to do - weighs things accurately.", 4.0, "May 22, 2023"},
	{"The scale works well but the battery compartment is difficult to open.", 3.0, "July 3, 2023"},
	{"Very disappointed with this purchase. The scale stopped working after just two weeks of use.", 1.0, "April 10, 2023"},
	{"Perfect for my baking needs! I can switch between grams and ounces easily.", 5.0, "August 5, 2023"},
	{"The scale is lightweight and doesn't take up much space in my kitchen drawer.", 4.0, "September 12, 2023"},
	{"It's okay but sometimes gives inconsistent readings when weighing the same item multiple times.", 3.0, "October 8, 2023"},
	{"Great value for money. I've been using it daily for my meal prep and it works perfectly.", 5.0, "November 20, 2023"},
	{"The buttons are a bit hard to press and the auto-off feature turns off too quickly.", 2.0, "December 5, 2023"},
	{"I love the sleek design and the large weighing platform. It can handle all my kitchen weighing needs.", 5.0, "January 15, 2024"},
	{"The display is hard to read in certain lighting conditions.", 3.0, "February 2, 2024"},
	{"This scale is a game-changer for my diet. Now I can accurately measure my portions.", 5.0, "March 10, 2024"},
	{"It's not very durable. The plastic feels cheap and I'm worried it won't last long.", 2.0, "April 22, 2024"},
	{"Works as advertised. No complaints so far after three months of use.", 4.0, "May 5, 2024"},
	{"The tare function is very useful when weighing ingredients for recipes.", 4.0, "June 18, 2024"},
	{"I received a defective unit that wouldn't turn on. Had to return it.", 1.0, "July 1, 2024"},
	{"Perfect for portion control and meal planning. The accuracy is spot on.", 5.0, "July 25, 2024"},
	{"Good scale but the instructions could be clearer about how to change measurement units.", 3.0, "August 3, 2024"},
	{"I've had many kitchen scales over the years and this is by far the best one.", 5.0, "August 15, 2024"},
	{"The scale works fine but arrived with scratches on the display.", 2.0, "August 30, 2024"},
	{"The weight capacity is perfect for my needs. I can weigh anything from small spices to large mixing bowls.", 4.0, "January 5, 2024"},
	{"I like that it's easy to clean - just wipe with a damp cloth and it's good as new.", 4.0, "February 15, 2024"},
	{"The scale is not accurate for very small weights (less than 5 grams).", 2.0, "March 20, 2024"},
	{"Great product! I use it for both cooking and weighing my packages for shipping.", 5.0, "April 10, 2024"},
	{"The LCD display is large and easy to read even without my glasses.", 5.0, "May 22, 2024"},
	{"It takes a few seconds to stabilize when weighing items, which can be annoying.", 3.0, "June 7, 2024"},
	{"The scale is compact enough to store in a small kitchen drawer when not in use.", 4.0, "July 12, 2024"},
	{"I've had this scale for over a year now and it's still working perfectly.", 5.0, "August 5, 2024"},
	{"The battery life could be better. I've had to replace them twice in three months.", 2.0, "August 20, 2024"},
	{"This scale has transformed my baking results - everything is so much more precise now!", 5.0, "August 25, 2024"},
	{"I dropped it once and it still works fine - seems quite durable.", 4.0, "August 28, 2024"},
	{"The price is reasonable for the quality you get.", 4.0, "August 29, 2024"},
	{"I wish it came with a bowl or container for measuring liquids.", 3.0, "August 30, 2024"},
	{"The auto-off feature helps save battery life, which I appreciate.", 4.0, "September 1, 2024"},
	{"Sometimes it gives different readings for the same item within seconds.", 2.0, "September 2, 2024"},
	{"Perfect for my meal prep Sundays! I can quickly weigh all my ingredients.", 5.0, "September 3, 2024"},
	{"The buttons make a loud clicking sound which is annoying in a quiet kitchen.", 3.0, "September 4, 2024"},
	{"I like that it can switch between different units of measurement easily.", 4.0, "September 5, 2024"},
	{"The scale is not very stable on uneven surfaces.", 3.0, "September 6, 2024"},
	{"Great value for money compared to other digital scales I looked at.", 4.0, "September 7, 2024"},
}
