package symbols

// Default returns a fresh copy of the built-in tables.
func Default() *Tables {
	t := &Tables{
		FontColors: []string{
			"black",
			"red",
			"green",
			"blue",
			"yellow",
			"purple",
			"orange",
			"grey",
		},
		FontSizes: []string{
			"small",
			"normal",
			"large",
		},
		RaceTimes: []string{
			"jungle_glider",
			"challenge_glider",
			"last",
		},
		Pictures:      make([]Picture, len(defaultPictureNames)),
		MessageSounds: append([]string(nil), defaultMessageSounds...),
		TalkTypes: []string{
			"Normal",
			"Shout",
			"Auto",
			"Global",
		},
		BalloonTypes: []string{
			"White box",
			"White box (1)",
			"\"Call\"",
			"Signboard",
			"Icon bubble",
		},
		CameraTypes: []string{
			"Normal",
			"Event",
		},
	}

	for i, name := range defaultPictureNames {
		t.Pictures[i] = Picture{Name: name, Code: defaultPictureCode(i)}
	}
	return t
}

// Codes 44-48 are unused by the game, so everything from index 44 on is
// shifted by five.
func defaultPictureCode(i int) uint16 {
	if i < 44 {
		return uint16(i)
	}
	return uint16(i + 5)
}

var defaultPictureNames = []string{
	"a_button",
	"b_button",
	"c_button",
	"wiimote",
	"nunchuck",
	"1_button",
	"2_button",
	"star",
	"launch_star",
	"pull_star",
	"pointer",
	"purple_starbit",
	"coconut",
	"orange_arrow",
	"star_bunny",
	"analog_stick",
	"x_mark",
	"coin",
	"mario",
	"dpad",
	"blue_chip",
	"star_chip",
	"home_button",
	"minus_button",
	"plus_button",
	"z_button",
	"silver_star",
	"grand_star",
	"luigi",
	"co_pointer",
	"purple_coin",
	"green_comet",
	"gold_crown",
	"cross_hair",
	"blank",
	"bowser",
	"hand_grab",
	"hand_point",
	"hand_hold",
	"rainbow_starbit",
	"peach",
	"letter",
	"white_qmark",
	"current_player",
	"1up_mushroom",
	"life_mushroom",
	"hungry_luma",
	"luma",
	"comet",
	"green_qmark",
	"stopwatch",
	"master_luma",
	"yoshi",
	"comet_medal",
	"silver_crown",
	"yoshi_grapple",
	"checkpoint_flag",
	"empty_star",
	"empty_comet_medal",
	"empty_comet",
	"empty_secret_star",
	"bronze_star",
	"blimp_fruit",
	"platinum_crown",
	"bronze_grand_star",
	"topman",
	"goomba",
	"coins",
	"dpad_up",
	"dpad_down",
	"orange_luma",
	"toad",
	"bronze_comet",
}

var defaultMessageSounds = []string{
	"null (0)",
	"Default",
	"SE_SV_KINOPIO_TALK_HEY",
	"SE_SV_KINOPIO_TALK_YAHOO",
	"SE_SV_KINOPIO_TALK_ANGRY",
	"SE_SV_KINOPIO_TALK_SAD",
	"SE_SV_KINOPIO_TALK_HAPPY",
	"SE_SV_KINOPIO_TALK_SLEEP",
	"SE_SV_KINOPIO_TALK_WELCOME",
	"SE_SV_KINOPIO_TALK_BEAUTIFUL",
	"SE_SV_KINOPIO_TALK_SURPRISE",
	"SE_SV_KINOPIO_PUHA",
	"SE_SV_KINOPIO_TALK_HELP",
	"SE_SV_KINOPIO_TALK_TREMBLE",
	"SE_SV_KINOPIO_TALK_STRONG",
	"SE_SV_KINOPIO_TALK_LOOK_OUT",
	"SE_SV_KINOPIO_TALK_WOW",
	"SE_SV_KINOPIO_TALK_WATER",
	"SE_SV_KINOPIO_TALK_HEY_SNOR",
	"SE_SV_KINOPIO_TALK_SAD_SNOR",
	"SE_SV_KINOPIO_NO_MAIL",
	"SE_SV_KINOPIO_LOOK_MAIL",
	"SE_SV_KINOPIO_TALK_SHOUT",
	"SE_SV_KINOPIO_TALK_TIRED",
	"SE_SV_KINOPIO_TALK_JOYFUL",
	"SE_SV_RABBIT_TALK_NORMAL",
	"SE_SV_RABBIT_TALK_CAUGHT",
	"SE_SV_RABBIT_TALK_THATS",
	"SE_SV_RABBIT_TALK_HELP",
	"SE_SV_RABBIT_TALK_THANKS",
	"SE_SV_PENGUIN_L_TALK_NORMAL",
	"SE_SV_PENGUIN_L_TALK_PLEASED",
	"SE_SV_PENGUIN_L_TALK_NG",
	"SE_SV_PENGUIN_L_TALK_QUESTION",
	"SE_SV_PENGUIN_L_TALK_DISTANT",
	"SE_SV_PENGUIN_L_TALK_NORMAL_L",
	"SE_SV_PENGUIN_L_TALK_PLEASED_L",
	"SE_SV_PENGUIN_L_TALK_NG_L",
	"SE_SV_PENGUIN_L_TALK_QUESTION_L",
	"SE_SV_PENGUIN_L_TALK_OH",
	"SE_SV_PENGUIN_S_TALK_NORMAL",
	"SE_SV_PENGUIN_S_TALK_GLAD",
	"SE_SV_PENGUIN_S_TALK_GLAD_HIGH",
	"SE_SV_PENGUIN_S_TALK_ANGRY",
	"SE_SV_PENGUIN_S_TALK_SAD",
	"SE_SV_PENGUIN_S_TALK_HAPPY",
	"SE_SV_PENGUIN_S_TALK_STRONG",
	"SE_SV_PENGUIN_S_TALK_NORMAL_W",
	"SE_SV_PENGUIN_S_TALK_GREET",
	"SE_SV_PENGUIN_S_TALK_WIN",
	"SE_SV_PENGUIN_S_TALK_LOSE",
	"SE_SV_PENGUIN_S_TALK_OUCH",
	"SE_SV_PENGUIN_ACE_TALK_NORMAL",
	"SE_SV_PENGUIN_ACE_TALK_GREET",
	"SE_SV_PENGUIN_ACE_TALK_WIN",
	"SE_SV_PENGUIN_ACE_TALK_LOSE",
	"SE_SV_PENGUIN_SS_HAPPY",
	"SE_SV_PENGUIN_SS_GREET",
	"SE_SV_PENGUIN_SS_DAMAGE",
	"SE_SV_PENGUIN_SS_DISAPPOINTED",
	"SE_SV_PENGUIN_SS_PLEASED",
	"SE_SV_PENGUIN_SS_ANGRY",
	"SE_SV_HONEYBEE_TALK_NORMAL",
	"SE_SV_HONEYBEE_TALK_CONFUSION",
	"SE_SV_HONEYBEE_TALK_QUESTION",
	"SE_SV_HONEYBEE_TALK_SURPRISE",
	"SE_SV_HONEYBEE_TALK_ORDER",
	"SE_SV_HONEYBEE_TALK_LAUGH",
	"SE_SV_HONEYBEE_TALK_GLAD",
	"SE_SV_HONEYBEE_TALK_SLEEP",
	"SE_SV_TICO_TALK_NORMAL",
	"SE_SV_TICO_TALK_GLAD",
	"SE_SV_TICO_TALK_ANGRY",
	"SE_SV_TICO_TALK_SAD",
	"SE_SV_TICO_TALK_HAPPY",
	"SE_SV_TICO_TICO",
	"SE_SV_TICO_TALK_CONFUSION",
	"SE_SV_TICO_TALK_THANKS",
	"SE_SV_TICO_TALK_DIST_HALF_GLAD",
	"SE_SV_TICO_TALK_DIST_HALF_NORMAL",
	"null (80)",
	"SE_SV_LUIGI_FRIGHTENED",
	"null (82)",
	"null (83)",
	"SE_SV_LUIGI_HEY",
	"SE_DM_KINOPIO_CHIEF",
	"SE_SV_CARETAKER_SHORT",
	"SE_SV_CARETAKER_NORMAL",
	"SE_SV_CARETAKER_LONG",
	"SE_SV_CARETAKER_REPEAT",
	"SE_SV_PEACH_TALK_HELP",
	"SE_SV_ROSETTA_TALK_NORMAL",
	"null (92)",
	"null (93)",
	"null (94)",
	"null (95)",
	"SE_SV_TICOFAT_TALK_NORMAL",
	"SE_SV_TICOFAT_TALK_KITA",
	"SE_SV_TICOFAT_META",
	"SE_SV_KINOPIOCHIEF_TALK_HEY",
	"SE_SV_KINOPIOCHIEF_TALK_LAUGH",
	"SE_SV_KINOPIOCHIEF_TALK_YAHOO",
	"SE_SV_TICOFAT_TALK_GIVE_ME",
	"SE_SV_TICOFAT_TALK_WAKU",
	"SE_SV_BUTLER_TALK_SURPRISE",
	"SE_SV_BUTLER_TALK_AGREE",
	"SE_SV_BUTLER_TALK_WORRIED",
	"SE_SV_BUTLER_TALK_NORMAL",
	"SE_SV_PENGUIN_OLD_GREET",
	"SE_SV_PENGUIN_OLD_GRAD",
	"SE_SV_PENGUIN_OLD_SAD",
	"SE_SV_PENGUIN_OLD_NORMAL",
	"SE_SV_LUIGI_TALK_TIRE",
	"SE_SV_LUIGI_TALK_YAH",
	"null (114)",
	"SE_SV_LUIGI_TALK_OH_YEAH",
	"SE_SV_BUTLER_TALK_QUESTION",
	"null (117)",
	"null (118)",
	"SE_SV_PENGUIN_OLD_SCARED",
	"SE_SV_TICOCOMET_TALK_PURURIN",
	"SE_SV_TICOCOMET_TALK_DON",
	"SE_SV_TICOSHOP_TALK_PIKARIN",
	"SE_SV_TICOSHOP_TALK_KITA",
	"SE_BV_KOOPAJR_TLK_PROVOKE",
	"SE_BV_KOOPA_TLK_LAUGH",
	"SE_BV_KOOPA_TLK_NORMAL",
	"SE_BV_KOOPA_TLK_REGRET",
	"SE_BV_KOOPA_TLK_CALM",
	"SE_BV_KOOPA_TLK_EXCITED",
	"SE_SV_TICOFAT_TALK_YEAH",
	"null (131)",
	"SE_SV_CARE_TAKER_TRAMPLE",
	"SE_SV_KINOPIOCHIEF_TALK_EVASIVE",
	"null (134)",
	"null (135)",
	"SE_SV_SIGNBOARD_HEY",
	"null (137)",
	"null (138)",
	"null (139)",
	"null (140)",
	"null (141)",
	"null (142)",
	"SE_SV_CARETAKER_ANGRY_FAST",
	"SE_SV_HONEYQUEEN_TALK_SURPRISE",
	"SE_SV_HONEYQUEEN_TALK_THANKS",
	"SE_SV_HONEYQUEEN_TALK_WORRY",
	"SE_SV_HONEYQUEEN_TALK_AA",
	"SE_SV_HONEYQUEEN_TALK_AN",
	"SE_SV_HONEYQUEEN_TALK_UFUFU",
	"SE_SV_TICOBIG_TALK_NORMAL",
	"SE_SV_TICOBIG_TALK_GLAD",
	"SE_SV_TICOBIG_TRAMPLED",
	"SE_SV_PICHAN_TALK_NORMAL",
	"SE_SV_PICHAN_TALK_GLAD",
	"SE_SV_PICHAN_TALK_ANGRY",
	"SE_SV_PICHAN_TALK_SAD",
	"SE_SV_PICHAN_TALK_HAPPY",
	"SE_SV_PICHAN_TALK_DIFFICULT",
	"SE_SV_BOMBHEI_RED_TALK_NORMAL",
	"SE_SV_BOMBHEI_RED_TALK_SHORT",
	"SE_SV_MONTE_TALK_NORMAL",
	"SE_SV_MONTE_TALK_ANGRY",
	"SE_SV_MONTE_TALK_SURPRISE",
	"SE_SV_MONTE_TALK_PROUD",
	"SE_SV_MONTE_TALK_WELCOME",
	"SE_SV_MONTE_TALK_QUESTION",
	"SE_SV_MEISTER_TALK_NORMAL",
	"SE_SV_MEISTER_TALK_QUESTION",
	"SE_SV_MEISTER_TALK_NOT_SEEN",
	"SE_SV_MEISTER_TALK_BAD",
	"SE_SV_MEISTER_TALK_STRONG",
	"SE_SV_MEISTER_TALK_ALL_RIGHT",
	"SE_SV_MEISTER_TALK_BOAST",
	"SE_SV_MEISTER_TALK_UN",
	"SE_SV_MEISTER_TALK_HAHAN",
	"SE_SV_MEISTER_TALK_EAT1",
	"SE_SV_MEISTER_TALK_EAT2",
	"SE_SV_SASURAI_TALK_NORMAL",
	"SE_SV_SASURAI_TALK_QUESTION",
	"SE_SV_SASURAI_TALK_ALL_RIGHT",
	"SE_SV_SASURAI_TALK_DO_BEST",
	"SE_SV_SASURAI_TALK_EXCELLENT",
	"SE_SV_SASURAI_TALK_REGRET",
	"SE_BV_BATTANKING_TALK_EIO",
	"SE_BV_BATTANKING_TALK_OI",
	"SE_SV_HELPERWITCH_TALK_SMILE",
	"SE_SV_HELPERWITCH_TALK_SMILE_2",
	"SE_SV_HELPERWITCH_TALK_LOOK",
	"SE_SV_HELPERWITCH_TALK_AHA",
	"SE_SV_HINT_TV_TALK_SUGGEST",
	"SE_SV_HINT_TV_TALK_OK",
	"SE_SV_PEACH_NPC_THANK_YOU",
}
